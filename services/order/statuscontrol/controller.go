package statuscontrol

import (
	"context"
	"sync"

	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/services/order"
)

// Each order uid is in one of three phases: absent (no override), pending
// (an update is in flight and its target status is shown optimistically) or
// committed (the store confirmed; the override lingers until a reader
// observes the store catching up).
type phase int

const (
	phasePending phase = iota
	phaseCommitted
)

type override struct {
	phase  phase
	status order.OrderStatus
}

// Controller reflects admin status changes optimistically before the store
// confirms them, and rolls the reflection back when the store refuses.
// Overrides are kept per order uid, so updates on different orders never
// contend.
type Controller struct {
	mutex     sync.Mutex
	overrides map[string]override
	orders    OrderStatusUpdater
	logger    mylog.Logger
}

func New(orders OrderStatusUpdater, logger mylog.Logger) *Controller {
	return &Controller{
		overrides: map[string]override{},
		orders:    orders,
		logger:    logger,
	}
}

// MoveOrder applies the optimistic override, then asks the store to make the
// transition. A failing store call removes the override again, leaving the
// true status untouched. When two calls race on the same order the last
// confirmed store write wins; no further ordering is enforced.
func (ct *Controller) MoveOrder(c context.Context, orderUID string, newStatus order.OrderStatus) error {
	ct.setPending(orderUID, newStatus)

	err := ct.orders.UpdateStatus(c, orderUID, newStatus)
	if err != nil {
		ct.rollback(orderUID, newStatus)
		ct.logger.Log(c, orderUID, mylog.SeverityWarn, "Rolled back optimistic status %s on order %s: %s", newStatus, orderUID, err)
		return err
	}

	ct.commit(orderUID, newStatus)

	return nil
}

// GetEffectiveStatus returns the optimistic status when an override is
// active for the order, else the stored status. A committed override is
// cleared as soon as the stored status has caught up with it.
func (ct *Controller) GetEffectiveStatus(orderUID string, storedStatus order.OrderStatus) order.OrderStatus {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	ov, found := ct.overrides[orderUID]
	if !found {
		return storedStatus
	}

	if ov.phase == phaseCommitted && ov.status == storedStatus {
		delete(ct.overrides, orderUID)
		return storedStatus
	}

	return ov.status
}

func (ct *Controller) setPending(orderUID string, newStatus order.OrderStatus) {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	ct.overrides[orderUID] = override{
		phase:  phasePending,
		status: newStatus,
	}
}

// rollback removes the override, but only when it still belongs to this
// call: a concurrent MoveOrder may have replaced it in the meantime.
func (ct *Controller) rollback(orderUID string, newStatus order.OrderStatus) {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	ov, found := ct.overrides[orderUID]
	if found && ov.phase == phasePending && ov.status == newStatus {
		delete(ct.overrides, orderUID)
	}
}

func (ct *Controller) commit(orderUID string, newStatus order.OrderStatus) {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	ov, found := ct.overrides[orderUID]
	if found && ov.status == newStatus {
		ct.overrides[orderUID] = override{
			phase:  phaseCommitted,
			status: newStatus,
		}
	}
}
