package checkout

import (
	"context"

	"github.com/goldencrumb/bakerybackend/services/cart"
	"github.com/goldencrumb/bakerybackend/services/delivery"
	"github.com/goldencrumb/bakerybackend/services/order"
	"github.com/goldencrumb/bakerybackend/services/payment"
)

//go:generate mockgen -source=api.go -package checkout -destination collaborators_mock.go Payer,Carter,ZoneResolver,OrderPlacer

type Payer interface {
	ProcessPayment(c context.Context, phoneNumber string, amountInCents int) (payment.PaymentResult, error)
}

type Carter interface {
	GetCart(c context.Context, cartUID string) (cart.Cart, bool, error)
	ClearCart(c context.Context, cartUID string) error
}

type ZoneResolver interface {
	GetZone(c context.Context, zoneUID string) (delivery.Zone, bool, error)
}

type OrderPlacer interface {
	CreateOrder(c context.Context, req order.CreateOrderRequest) (order.Order, error)
	RecordPayment(c context.Context, orderUID string, transactionUID string, status order.PaymentStatus) error
}
