package statuscontrol

import (
	"context"

	"github.com/goldencrumb/bakerybackend/services/order"
)

//go:generate mockgen -source=api.go -package statuscontrol -destination updater_mock.go OrderStatusUpdater
type OrderStatusUpdater interface {
	GetOrder(c context.Context, orderUID string) (order.Order, bool, error)
	UpdateStatus(c context.Context, orderUID string, newStatus order.OrderStatus) error
}
