package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/mypublisher"
	"github.com/goldencrumb/bakerybackend/lib/mystore"
	"github.com/goldencrumb/bakerybackend/lib/mytime"
	"github.com/goldencrumb/bakerybackend/lib/myuuid"
	"github.com/goldencrumb/bakerybackend/services/order/orderevents"
)

type service struct {
	orderStore mystore.Store[Order]
	publisher  mypublisher.Publisher
	nower      mytime.Nower
	uuider     myuuid.UUIDer
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(orderStore mystore.Store[Order], publisher mypublisher.Publisher, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		orderStore: orderStore,
		publisher:  publisher,
		nower:      nower,
		uuider:     uuider,
		logger:     logger,
	}
}

// CreateOrder persists a new order in status received. This is the commit
// point of a checkout: the order exists from here on and is never deleted.
func (s *service) CreateOrder(c context.Context, req CreateOrderRequest) (Order, error) {
	if req.Delivery.AddressStreet == "" {
		return Order{}, myerrors.NewInvalidInputError(fmt.Errorf("missing delivery street"))
	}
	if req.Customer.PhoneNumber == "" {
		return Order{}, myerrors.NewInvalidInputError(fmt.Errorf("missing customer phone number"))
	}

	now := s.nower.Now()
	uid := s.uuider.Create()

	newOrder := Order{
		UID:                uid,
		OrderNumber:        composeOrderNumber(now, uid),
		Customer:           req.Customer,
		Delivery:           req.Delivery,
		Payment:            req.Payment,
		Items:              req.Items,
		SubtotalInCents:    req.SubtotalInCents,
		DeliveryFeeInCents: req.DeliveryFeeInCents,
		TotalInCents:       req.SubtotalInCents + req.DeliveryFeeInCents,
		Status:             StatusReceived,
		Notes:              req.Notes,
		DueDate:            req.DueDate,
		CreatedAt:          now,
	}
	if newOrder.Payment.Status == "" {
		newOrder.Payment.Status = PaymentStatusPending
	}

	err := s.orderStore.RunInTransaction(c, func(c context.Context) error {
		err := s.orderStore.Put(c, uid, newOrder)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing order: %s", err))
		}

		err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderCreated{
			OrderUID:     uid,
			OrderNumber:  newOrder.OrderNumber,
			CustomerName: newOrder.Customer.Name,
			TotalInCents: newOrder.TotalInCents,
			Status:       string(newOrder.Status),
			DueDate:      newOrder.DueDate,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return Order{}, err
	}

	s.logger.Log(c, uid, mylog.SeverityInfo, "Created order %s (%s)", newOrder.OrderNumber, uid)

	return newOrder, nil
}

func (s *service) GetOrder(c context.Context, orderUID string) (Order, bool, error) {
	return s.orderStore.Get(c, orderUID)
}

func (s *service) GetOrdersByStatus(c context.Context, status OrderStatus) ([]Order, error) {
	if !status.IsValid() {
		return nil, myerrors.NewInvalidInputError(fmt.Errorf("unknown status %s", status))
	}

	orders, err := s.orderStore.Query(c, []mystore.Filter{{Field: "Status", Compare: "=", Value: string(status)}}, "CreatedAt")
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	// The in-memory store does not apply filters, so filter here as well.
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (s *service) ListOrders(c context.Context) ([]Order, error) {
	orders, err := s.orderStore.List(c)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return orders, nil
}

// UpdateStatus applies a fulfillment transition. Anything but the immediate
// successor, or cancellation of a non-terminal order, is rejected.
func (s *service) UpdateStatus(c context.Context, orderUID string, newStatus OrderStatus) error {
	if !newStatus.IsValid() {
		return myerrors.NewInvalidInputError(fmt.Errorf("unknown status %s", newStatus))
	}

	var oldStatus OrderStatus
	err := s.orderStore.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := s.orderStore.Get(c, orderUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID))
		}

		if !existing.Status.CanTransitionTo(newStatus) {
			return myerrors.NewConflictError(InvalidTransitionError{
				OrderUID: orderUID,
				From:     existing.Status,
				To:       newStatus,
			})
		}

		oldStatus = existing.Status
		now := s.nower.Now()
		existing.Status = newStatus
		existing.LastModified = &now

		err = s.orderStore.Put(c, orderUID, existing)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderStatusChanged{
			OrderUID:  orderUID,
			OldStatus: string(oldStatus),
			NewStatus: string(newStatus),
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Order %s moved %s -> %s", orderUID, oldStatus, newStatus)

	return nil
}

// RecordPayment attaches the transaction outcome to an already created order.
func (s *service) RecordPayment(c context.Context, orderUID string, transactionUID string, paymentStatus PaymentStatus) error {
	return s.orderStore.RunInTransaction(c, func(c context.Context) error {
		existing, found, err := s.orderStore.Get(c, orderUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID))
		}

		now := s.nower.Now()
		existing.Payment.TransactionUID = transactionUID
		existing.Payment.Status = paymentStatus
		existing.LastModified = &now

		err = s.orderStore.Put(c, orderUID, existing)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		s.logger.Log(c, orderUID, mylog.SeverityInfo, "Recorded %s payment %s on order %s", paymentStatus, transactionUID, orderUID)

		return nil
	})
}

// composeOrderNumber derives the human-facing number from the creation date
// and the first segment of the uid.
func composeOrderNumber(now time.Time, uid string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uid, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("BO-%s-%s", now.Format("20060102"), suffix)
}
