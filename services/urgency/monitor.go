package urgency

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/myhttp"
	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/mypubsub"
	"github.com/goldencrumb/bakerybackend/lib/mytime"
	"github.com/goldencrumb/bakerybackend/services/order"
	"github.com/goldencrumb/bakerybackend/services/order/orderevents"
)

// Alert is one order needing attention in the back office today.
type Alert struct {
	OrderUID     string
	OrderNumber  string
	CustomerName string
	Status       order.OrderStatus
	DueDate      time.Time
	DaysUntilDue int
	Urgency      Urgency
	DateStatus   string
}

// Monitor recomputes the alert set from the full order list whenever an
// order event arrives. Dismissing hides the current set; an order newly
// entering the set brings the alerts back.
type Monitor struct {
	mutex      sync.Mutex
	orders     OrderLister
	subscriber mypubsub.PubSub
	nower      mytime.Nower
	logger     mylog.Logger
	alerts     []Alert
	known      map[string]bool
	dismissed  bool
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewMonitor(orders OrderLister, subscriber mypubsub.PubSub, nower mytime.Nower, logger mylog.Logger) *Monitor {
	return &Monitor{
		orders:     orders,
		subscriber: subscriber,
		nower:      nower,
		logger:     logger,
		alerts:     []Alert{},
		known:      map[string]bool{},
	}
}

func (m *Monitor) Subscribe(c context.Context) error {
	err := m.subscriber.CreateTopic(c, orderevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", orderevents.TopicName, err)
	}

	err = m.subscriber.Subscribe(c, orderevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/urgency/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", orderevents.TopicName, err)
	}

	return nil
}

func (m *Monitor) OnOrderCreated(c context.Context, topic string, event orderevents.OrderCreated) error {
	m.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Webhook: order %s created", event.OrderUID)

	return m.Recompute(c)
}

func (m *Monitor) OnOrderStatusChanged(c context.Context, topic string, event orderevents.OrderStatusChanged) error {
	m.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Webhook: order %s moved %s -> %s", event.OrderUID, event.OldStatus, event.NewStatus)

	return m.Recompute(c)
}

// Recompute rebuilds the alert set from scratch. Only due-today, due-tomorrow
// and overdue orders alert; orders 2 or 3 days out show as urgent in the
// overview but stay out of the alert set.
func (m *Monitor) Recompute(c context.Context) error {
	orders, err := m.orders.ListOrders(c)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error listing orders: %s", err))
	}

	now := m.nower.Now()

	alerts := []Alert{}
	for _, o := range orders {
		if o.Status == order.StatusDelivered {
			continue
		}

		dueDate := o.DueDate
		if dueDate == nil {
			dueDate = o.Delivery.DeliveryDate
		}
		if dueDate == nil {
			continue
		}

		days := DaysUntilDue(*dueDate, now)
		if !TriggersAlert(days) {
			continue
		}

		alerts = append(alerts, Alert{
			OrderUID:     o.UID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.Customer.Name,
			Status:       o.Status,
			DueDate:      *dueDate,
			DaysUntilDue: days,
			Urgency:      Classify(days),
			DateStatus:   DateStatusText(*dueDate, now),
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].DaysUntilDue != alerts[j].DaysUntilDue {
			return alerts[i].DaysUntilDue < alerts[j].DaysUntilDue
		}
		return alerts[i].OrderNumber < alerts[j].OrderNumber
	})

	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, alert := range alerts {
		if !m.known[alert.OrderUID] {
			m.dismissed = false
		}
	}

	m.known = map[string]bool{}
	for _, alert := range alerts {
		m.known[alert.OrderUID] = true
	}
	m.alerts = alerts

	return nil
}

// Alerts returns the current alert set and whether the user dismissed it.
func (m *Monitor) Alerts() ([]Alert, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.alerts, m.dismissed
}

// Dismiss hides the current alerts for this session. The classification
// itself is untouched: a recompute with a fresh alerting order undoes it.
func (m *Monitor) Dismiss() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.dismissed = true
}
