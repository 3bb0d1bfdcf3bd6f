package statuscontrol

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/services/order"
)

const orderUID = "11111111-2222-3333-4444-555555555555"

func TestController(t *testing.T) {
	c := context.TODO()

	t.Run("Optimistic status visible while update is in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut, updater := setup(ctrl)

		// given: the store only confirms after we have observed the optimistic value
		updater.EXPECT().UpdateStatus(gomock.Any(), orderUID, order.StatusConfirmed).DoAndReturn(
			func(c context.Context, uid string, newStatus order.OrderStatus) error {
				assert.Equal(t, order.StatusConfirmed, sut.GetEffectiveStatus(orderUID, order.StatusReceived))
				return nil
			})

		// when
		err := sut.MoveOrder(c, orderUID, order.StatusConfirmed)

		// then
		assert.NoError(t, err)
	})

	t.Run("Confirmed update matches the stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sut, updater := setup(ctrl)

		// given
		updater.EXPECT().UpdateStatus(gomock.Any(), orderUID, order.StatusConfirmed).Return(nil)

		// when
		err := sut.MoveOrder(c, orderUID, order.StatusConfirmed)

		// then: the store has caught up, so effective equals stored
		assert.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, sut.GetEffectiveStatus(orderUID, order.StatusConfirmed))

		// and the override is gone: a later stored value shines through
		assert.Equal(t, order.StatusPreparing, sut.GetEffectiveStatus(orderUID, order.StatusPreparing))
	})

	t.Run("Committed override bridges a stale read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sut, updater := setup(ctrl)

		// given
		updater.EXPECT().UpdateStatus(gomock.Any(), orderUID, order.StatusConfirmed).Return(nil)

		// when
		err := sut.MoveOrder(c, orderUID, order.StatusConfirmed)

		// then: a reader that still sees the old stored value gets the new status
		assert.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, sut.GetEffectiveStatus(orderUID, order.StatusReceived))
	})

	t.Run("Failed update rolls back to the stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sut, updater := setup(ctrl)

		// given: the store refuses the transition
		updater.EXPECT().UpdateStatus(gomock.Any(), orderUID, order.StatusDelivered).Return(
			order.InvalidTransitionError{OrderUID: orderUID, From: order.StatusReceived, To: order.StatusDelivered})

		// when
		err := sut.MoveOrder(c, orderUID, order.StatusDelivered)

		// then
		assert.Error(t, err)
		assert.Equal(t, order.StatusReceived, sut.GetEffectiveStatus(orderUID, order.StatusReceived))
	})

	t.Run("Last confirmed update wins on the same order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sut, updater := setup(ctrl)

		// given: the first update fails after a second one has already taken over
		updater.EXPECT().UpdateStatus(gomock.Any(), orderUID, order.StatusConfirmed).DoAndReturn(
			func(c context.Context, uid string, newStatus order.OrderStatus) error {
				secondErr := sut.MoveOrder(c, orderUID, order.StatusCancelled)
				assert.NoError(t, secondErr)
				return order.InvalidTransitionError{OrderUID: orderUID, From: order.StatusCancelled, To: order.StatusConfirmed}
			})
		updater.EXPECT().UpdateStatus(gomock.Any(), orderUID, order.StatusCancelled).Return(nil)

		// when
		err := sut.MoveOrder(c, orderUID, order.StatusConfirmed)

		// then: the failed first update must not wipe the second one's override
		assert.Error(t, err)
		assert.Equal(t, order.StatusCancelled, sut.GetEffectiveStatus(orderUID, order.StatusReceived))
	})

	t.Run("Updates on different orders do not contend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sut, updater := setup(ctrl)
		otherUID := "99999999-8888-7777-6666-555555555555"

		// given
		updater.EXPECT().UpdateStatus(gomock.Any(), orderUID, order.StatusConfirmed).Return(nil)
		updater.EXPECT().UpdateStatus(gomock.Any(), otherUID, order.StatusCancelled).Return(nil)

		// when
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, sut.MoveOrder(c, orderUID, order.StatusConfirmed))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, sut.MoveOrder(c, otherUID, order.StatusCancelled))
		}()
		wg.Wait()

		// then
		assert.Equal(t, order.StatusConfirmed, sut.GetEffectiveStatus(orderUID, order.StatusReceived))
		assert.Equal(t, order.StatusCancelled, sut.GetEffectiveStatus(otherUID, order.StatusReceived))
	})
}

func setup(ctrl *gomock.Controller) (*Controller, *MockOrderStatusUpdater) {
	updater := NewMockOrderStatusUpdater(ctrl)
	sut := New(updater, mylog.New("statuscontrol"))

	return sut, updater
}
