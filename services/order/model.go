package order

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	StatusReceived   OrderStatus = "received"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusReady      OrderStatus = "ready"
	StatusDispatched OrderStatus = "dispatched"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusReceived,
		StatusConfirmed,
		StatusPreparing,
		StatusReady,
		StatusDispatched,
		StatusDelivered,
		StatusCancelled,
	}
}

// statusSuccessor encodes the forward-progressing fulfillment sequence.
// Cancellation is handled separately: it is reachable from every
// non-terminal status.
var statusSuccessor = map[OrderStatus]OrderStatus{
	StatusReceived:   StatusConfirmed,
	StatusConfirmed:  StatusPreparing,
	StatusPreparing:  StatusReady,
	StatusReady:      StatusDispatched,
	StatusDispatched: StatusDelivered,
}

// statusLabels and statusColors are total over the enumeration: every status
// has an entry, there is no fallback.
var statusLabels = map[OrderStatus]string{
	StatusReceived:   "Received",
	StatusConfirmed:  "Confirmed",
	StatusPreparing:  "Preparing",
	StatusReady:      "Ready for dispatch",
	StatusDispatched: "Out for delivery",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
}

var statusColors = map[OrderStatus]string{
	StatusReceived:   "blue",
	StatusConfirmed:  "teal",
	StatusPreparing:  "orange",
	StatusReady:      "purple",
	StatusDispatched: "indigo",
	StatusDelivered:  "green",
	StatusCancelled:  "red",
}

func (s OrderStatus) IsValid() bool {
	_, labelled := statusLabels[s]
	return labelled
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo permits only the immediate successor, plus cancellation
// from any non-terminal status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	return statusSuccessor[s] == target
}

func (s OrderStatus) Label() string {
	return statusLabels[s]
}

func (s OrderStatus) Color() string {
	return statusColors[s]
}

// InvalidTransitionError signals a status change that the fulfillment
// sequence does not permit.
type InvalidTransitionError struct {
	OrderUID string
	From     OrderStatus
	To       OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s cannot move from %s to %s", e.OrderUID, e.From, e.To)
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type CustomerInfo struct {
	Name        string
	PhoneNumber string
	Email       string
}

type DeliveryInfo struct {
	ZoneUID             string
	ZoneName            string
	AddressStreet       string
	AddressCity         string
	DeliveryDate        *time.Time
	TimeSlot            string
	SpecialInstructions string
}

type PaymentInfo struct {
	Method                 string
	AmountPaidInCents      int
	AmountRemainingInCents int
	Status                 PaymentStatus
	TransactionUID         string
}

// ItemCustomization mirrors the cart-side customization; absent fields stay
// empty rather than failing the mapping.
type ItemCustomization struct {
	Size        string
	Cream       string
	Container   string
	Decorations []string
	Notes       string
	ImageURLs   []string
}

type OrderItem struct {
	ProductUID        string
	Name              string
	Quantity          int
	UnitPriceInCents  int
	TotalPriceInCents int
	IsCustomLoaf      bool
	Customization     ItemCustomization
}

type Order struct {
	UID                string
	OrderNumber        string
	Customer           CustomerInfo
	Delivery           DeliveryInfo
	Payment            PaymentInfo
	Items              []OrderItem
	SubtotalInCents    int
	DeliveryFeeInCents int
	TotalInCents       int
	Status             OrderStatus
	Notes              string
	DueDate            *time.Time
	CreatedAt          time.Time
	LastModified       *time.Time
}

// CreateOrderRequest is everything the caller supplies; identity, order
// number, status and timestamps are assigned by the store on creation.
type CreateOrderRequest struct {
	Customer           CustomerInfo
	Delivery           DeliveryInfo
	Payment            PaymentInfo
	Items              []OrderItem
	SubtotalInCents    int
	DeliveryFeeInCents int
	Notes              string
	DueDate            *time.Time
}
