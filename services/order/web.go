package order

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/goldencrumb/bakerybackend/lib/mycontext"
	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/myhttp"
	"github.com/goldencrumb/bakerybackend/lib/mylog"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/order", s.createOrderPage()).Methods("POST")
	router.HandleFunc("/api/order", s.listOrdersPage()).Methods("GET")
	router.HandleFunc("/api/order/history", s.historyPage()).Methods("GET")
	router.HandleFunc("/api/order/history/export", s.historyExportPage()).Methods("GET")
	router.HandleFunc("/api/order/{orderUID}", s.getOrderPage()).Methods("GET")
	router.HandleFunc("/api/order/{orderUID}/payment", s.recordPaymentPage()).Methods("POST")
}

func (s *service) createOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := CreateOrderRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing order request: %s", err)))
			return
		}

		created, err := s.CreateOrder(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, created)
	}
}

func (s *service) listOrdersPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		statusParam := r.URL.Query().Get("status")

		var orders []Order
		var err error
		if statusParam == "" {
			orders, err = s.ListOrders(c)
		} else {
			orders, err = s.GetOrdersByStatus(c, OrderStatus(statusParam))
		}
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, orders)
	}
}

func (s *service) getOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		existing, found, err := s.orderStore.Get(c, orderUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, existing)
	}
}

type recordPaymentRequest struct {
	TransactionUID string
	Status         PaymentStatus
}

func (s *service) recordPaymentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		req := recordPaymentRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing payment: %s", err)))
			return
		}

		err = s.RecordPayment(c, orderUID, req.TransactionUID, req.Status)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}

// HistoryRecord is the stable export shape consumed by external reporting:
// do not rename or reorder fields without coordinating with those consumers.
type HistoryRecord struct {
	ID           string
	OrderNumber  string
	CustomerName string
	Cake         string
	Cream        string
	Topping      string
	TotalAmount  int
	DeliveryDate string
}

func (s *service) historyRecords(c context.Context) ([]HistoryRecord, error) {
	delivered, err := s.GetOrdersByStatus(c, StatusDelivered)
	if err != nil {
		return nil, err
	}

	records := make([]HistoryRecord, 0, len(delivered))
	for _, o := range delivered {
		record := HistoryRecord{
			ID:           o.UID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.Customer.Name,
			TotalAmount:  o.TotalInCents,
		}
		if len(o.Items) > 0 {
			primary := o.Items[0]
			record.Cake = primary.Name
			record.Cream = primary.Customization.Cream
			if len(primary.Customization.Decorations) > 0 {
				record.Topping = primary.Customization.Decorations[0]
			}
		}
		if o.Delivery.DeliveryDate != nil {
			record.DeliveryDate = o.Delivery.DeliveryDate.Format("2006-01-02")
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *service) historyPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		records, err := s.historyRecords(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, records)
	}
}

func (s *service) historyExportPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		records, err := s.historyRecords(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=order_history.csv")

		writer := csv.NewWriter(w)
		writer.Comma = ';'

		err = writer.Write([]string{"id", "orderNumber", "customerName", "cake", "cream", "topping", "totalAmount", "deliveryDate"})
		if err != nil {
			s.logger.Log(c, "", mylog.SeverityError, "Error writing csv header: %s", err)
			return
		}
		for _, record := range records {
			err = writer.Write([]string{
				record.ID,
				record.OrderNumber,
				record.CustomerName,
				record.Cake,
				record.Cream,
				record.Topping,
				strconv.Itoa(record.TotalAmount),
				record.DeliveryDate,
			})
			if err != nil {
				s.logger.Log(c, "", mylog.SeverityError, "Error writing csv record: %s", err)
				return
			}
		}
		writer.Flush()
	}
}
