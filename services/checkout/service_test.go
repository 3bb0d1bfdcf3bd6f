package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/mystore"
	"github.com/goldencrumb/bakerybackend/lib/mytime"
	"github.com/goldencrumb/bakerybackend/services/cart"
	"github.com/goldencrumb/bakerybackend/services/order"
	"github.com/goldencrumb/bakerybackend/services/payment"
)

const (
	cartUID  = "cart-123"
	orderUID = "11111111-2222-3333-4444-555555555555"
)

func TestCheckoutService(t *testing.T) {

	t.Run("Start checkout is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, _, _, _, _ := setup(ctrl)

		// when
		first, err := sut.StartCheckout(ctx, cartUID)
		assert.NoError(t, err)

		form := exampleForm()
		_, err = sut.UpdateForm(ctx, cartUID, form)
		assert.NoError(t, err)

		second, err := sut.StartCheckout(ctx, cartUID)
		assert.NoError(t, err)

		// then: the second start does not wipe the filled-in form
		assert.Equal(t, StepDelivery, first.CurrentStep)
		assert.Equal(t, first.StartedAt, second.StartedAt)
		assert.Equal(t, form, second.Form)
	})

	t.Run("Navigate between steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, _, _, _, _ := setup(ctrl)
		startCheckout(t, ctx, sut)

		// forward to review
		session, err := sut.GoToStep(ctx, cartUID, StepReview)
		assert.NoError(t, err)
		assert.Equal(t, StepReview, session.CurrentStep)

		// explicitly back to delivery
		session, err = sut.GoToStep(ctx, cartUID, StepDelivery)
		assert.NoError(t, err)
		assert.Equal(t, StepDelivery, session.CurrentStep)
	})

	t.Run("Confirmation cannot be navigated to", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, _, _, _, _ := setup(ctrl)
		startCheckout(t, ctx, sut)

		_, err := sut.GoToStep(ctx, cartUID, StepConfirmation)
		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))

		_, err = sut.GoToStep(ctx, cartUID, CheckoutStep("checkout"))
		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
	})

	t.Run("Submit order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, sut, carter, zones, payer, orders := setup(ctrl)
		startCheckout(t, ctx, sut)

		// given: subtotal 4000 and fee 300 charge 2000 upfront, 2300 remains
		carter.EXPECT().GetCart(gomock.Any(), cartUID).Return(exampleCart(), true, nil)
		zones.EXPECT().GetZone(gomock.Any(), "zone_north").Return(exampleZone(), true, nil)
		payer.EXPECT().ProcessPayment(gomock.Any(), "0712345678", 2000).Return(
			payment.PaymentResult{Success: true, TransactionID: "TXN-1"}, nil)
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(c context.Context, req order.CreateOrderRequest) (order.Order, error) {
				assert.Equal(t, 2000, req.Payment.AmountPaidInCents)
				assert.Equal(t, 2300, req.Payment.AmountRemainingInCents)
				assert.Equal(t, "TXN-1", req.Payment.TransactionUID)
				return order.Order{UID: orderUID, OrderNumber: "BO-20260314-111111", Status: order.StatusReceived}, nil
			})
		orders.EXPECT().RecordPayment(gomock.Any(), orderUID, "TXN-1", order.PaymentStatusPartial).Return(nil)
		carter.EXPECT().ClearCart(gomock.Any(), cartUID).Return(nil)

		// when
		created, err := sut.SubmitOrder(ctx, cartUID)

		// then
		assert.NoError(t, err)
		assert.Equal(t, orderUID, created.UID)

		session, found, err := sut.GetSession(ctx, cartUID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, StepConfirmation, session.CurrentStep)
		assert.Equal(t, orderUID, session.OrderUID)
		assert.False(t, session.Submitting)
	})

	t.Run("Declined payment keeps cart and creates no order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, carter, zones, payer, _ := setup(ctrl)
		startCheckout(t, ctx, sut)

		// given
		carter.EXPECT().GetCart(gomock.Any(), cartUID).Return(exampleCart(), true, nil)
		zones.EXPECT().GetZone(gomock.Any(), "zone_north").Return(exampleZone(), true, nil)
		payer.EXPECT().ProcessPayment(gomock.Any(), "0712345678", 2000).Return(
			payment.PaymentResult{Success: false, ErrorMessage: "insufficient balance on mobile-money account"}, nil)

		// when
		_, err := sut.SubmitOrder(ctx, cartUID)

		// then: mocks verify that no order is created and the cart stays
		assert.Error(t, err)
		assert.Equal(t, 422, myerrors.GetHTTPStatus(err))
		assert.Contains(t, err.Error(), "insufficient balance")

		session, _, _ := sut.GetSession(ctx, cartUID)
		assert.Equal(t, StepPayment, session.CurrentStep)
		assert.False(t, session.Submitting)
	})

	t.Run("Invalid phone number fails before payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, carter, zones, payer, _ := setup(ctrl)
		startCheckout(t, ctx, sut)

		carter.EXPECT().GetCart(gomock.Any(), cartUID).Return(exampleCart(), true, nil)
		zones.EXPECT().GetZone(gomock.Any(), "zone_north").Return(exampleZone(), true, nil)
		payer.EXPECT().ProcessPayment(gomock.Any(), "0712345678", 2000).Return(
			payment.PaymentResult{}, myerrors.NewInvalidInputError(errors.New("invalid phone number 123")))

		_, err := sut.SubmitOrder(ctx, cartUID)

		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))

		session, _, _ := sut.GetSession(ctx, cartUID)
		assert.Equal(t, StepPayment, session.CurrentStep)
		assert.False(t, session.Submitting)
	})

	t.Run("Resubmission while in flight is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, carter, zones, payer, orders := setup(ctrl)
		startCheckout(t, ctx, sut)

		// given: a second submit arrives while the payment call is underway
		carter.EXPECT().GetCart(gomock.Any(), cartUID).Return(exampleCart(), true, nil)
		zones.EXPECT().GetZone(gomock.Any(), "zone_north").Return(exampleZone(), true, nil)
		payer.EXPECT().ProcessPayment(gomock.Any(), "0712345678", 2000).DoAndReturn(
			func(c context.Context, phoneNumber string, amountInCents int) (payment.PaymentResult, error) {
				_, resubmitErr := sut.SubmitOrder(c, cartUID)
				assert.Error(t, resubmitErr)
				assert.Equal(t, 409, myerrors.GetHTTPStatus(resubmitErr))
				return payment.PaymentResult{Success: true, TransactionID: "TXN-1"}, nil
			})
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(
			order.Order{UID: orderUID, Status: order.StatusReceived}, nil)
		orders.EXPECT().RecordPayment(gomock.Any(), orderUID, "TXN-1", order.PaymentStatusPartial).Return(nil)
		carter.EXPECT().ClearCart(gomock.Any(), cartUID).Return(nil)

		// when
		_, err := sut.SubmitOrder(ctx, cartUID)

		// then: the first submit is unaffected by the rejected second one
		assert.NoError(t, err)
	})

	t.Run("Failing order creation aborts before cart clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, carter, zones, payer, orders := setup(ctrl)
		startCheckout(t, ctx, sut)

		carter.EXPECT().GetCart(gomock.Any(), cartUID).Return(exampleCart(), true, nil)
		zones.EXPECT().GetZone(gomock.Any(), "zone_north").Return(exampleZone(), true, nil)
		payer.EXPECT().ProcessPayment(gomock.Any(), "0712345678", 2000).Return(
			payment.PaymentResult{Success: true, TransactionID: "TXN-1"}, nil)
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(
			order.Order{}, errors.New("store exploded"))

		_, err := sut.SubmitOrder(ctx, cartUID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to place order")

		session, _, _ := sut.GetSession(ctx, cartUID)
		assert.False(t, session.Submitting)
		assert.NotEqual(t, StepConfirmation, session.CurrentStep)
	})

	t.Run("Failing cart clear does not undo the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, carter, zones, payer, orders := setup(ctrl)
		startCheckout(t, ctx, sut)

		carter.EXPECT().GetCart(gomock.Any(), cartUID).Return(exampleCart(), true, nil)
		zones.EXPECT().GetZone(gomock.Any(), "zone_north").Return(exampleZone(), true, nil)
		payer.EXPECT().ProcessPayment(gomock.Any(), "0712345678", 2000).Return(
			payment.PaymentResult{Success: true, TransactionID: "TXN-1"}, nil)
		orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(
			order.Order{UID: orderUID, Status: order.StatusReceived}, nil)
		orders.EXPECT().RecordPayment(gomock.Any(), orderUID, "TXN-1", order.PaymentStatusPartial).Return(nil)
		carter.EXPECT().ClearCart(gomock.Any(), cartUID).Return(errors.New("cart store down"))

		// when
		created, err := sut.SubmitOrder(ctx, cartUID)

		// then: order creation is the commit point
		assert.NoError(t, err)
		assert.Equal(t, orderUID, created.UID)

		session, _, _ := sut.GetSession(ctx, cartUID)
		assert.Equal(t, StepConfirmation, session.CurrentStep)
	})

	t.Run("Empty cart cannot be submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, carter, _, _, _ := setup(ctrl)
		startCheckout(t, ctx, sut)

		carter.EXPECT().GetCart(gomock.Any(), cartUID).Return(cart.Cart{}, false, nil)

		_, err := sut.SubmitOrder(ctx, cartUID)

		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
	})

	t.Run("Submit without a session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, _, _, _, _ := setup(ctrl)

		_, err := sut.SubmitOrder(ctx, cartUID)

		assert.Error(t, err)
		assert.Equal(t, 404, myerrors.GetHTTPStatus(err))
	})
}

func startCheckout(t *testing.T, ctx context.Context, sut *service) {
	t.Helper()

	_, err := sut.StartCheckout(ctx, cartUID)
	assert.NoError(t, err)
	_, err = sut.UpdateForm(ctx, cartUID, exampleForm())
	assert.NoError(t, err)
}

func setup(ctrl *gomock.Controller) (context.Context, *service, *MockCarter, *MockZoneResolver, *MockPayer, *MockOrderPlacer) {
	c := context.TODO()
	sessionStore, _, _ := mystore.New[CheckoutSession](c)
	payer := NewMockPayer(ctrl)
	carter := NewMockCarter(ctrl)
	zones := NewMockZoneResolver(ctrl)
	orders := NewMockOrderPlacer(ctrl)
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	sut := NewService(sessionStore, payer, carter, zones, orders, nower, mylog.New("checkout"))

	return c, sut, carter, zones, payer, orders
}
