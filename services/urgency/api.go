package urgency

import (
	"context"

	"github.com/goldencrumb/bakerybackend/services/order"
)

//go:generate mockgen -source=api.go -package urgency -destination lister_mock.go OrderLister

type OrderLister interface {
	ListOrders(c context.Context) ([]order.Order, error)
}
