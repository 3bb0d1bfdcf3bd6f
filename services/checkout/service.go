package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/mystore"
	"github.com/goldencrumb/bakerybackend/lib/mytime"
	"github.com/goldencrumb/bakerybackend/services/order"
)

type service struct {
	sessionStore mystore.Store[CheckoutSession]
	payer        Payer
	carter       Carter
	zones        ZoneResolver
	orders       OrderPlacer
	upfrontRatio float64
	nower        mytime.Nower
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(sessionStore mystore.Store[CheckoutSession], payer Payer, carter Carter, zones ZoneResolver, orders OrderPlacer, nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		sessionStore: sessionStore,
		payer:        payer,
		carter:       carter,
		zones:        zones,
		orders:       orders,
		upfrontRatio: DefaultUpfrontRatio,
		nower:        nower,
		logger:       logger,
	}
}

// StartCheckout begins a session for the cart, or returns the session that
// is already underway so a page refresh does not lose progress.
func (s *service) StartCheckout(c context.Context, cartUID string) (CheckoutSession, error) {
	var session CheckoutSession
	err := s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		session, found, err = s.sessionStore.Get(c, cartUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if found {
			return nil
		}

		session = CheckoutSession{
			CartUID:     cartUID,
			CurrentStep: StepDelivery,
			StartedAt:   s.nower.Now(),
		}

		err = s.sessionStore.Put(c, cartUID, session)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		s.logger.Log(c, cartUID, mylog.SeverityInfo, "Started checkout for cart %s", cartUID)

		return nil
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	return session, nil
}

func (s *service) GetSession(c context.Context, cartUID string) (CheckoutSession, bool, error) {
	return s.sessionStore.Get(c, cartUID)
}

func (s *service) UpdateForm(c context.Context, cartUID string, form CheckoutForm) (CheckoutSession, error) {
	return s.modifySession(c, cartUID, func(session *CheckoutSession) error {
		session.Form = form
		return nil
	})
}

// GoToStep navigates the session. Moving back is always allowed; moving
// forward is allowed up to review. Confirmation is only reached by
// submitting the order.
func (s *service) GoToStep(c context.Context, cartUID string, step CheckoutStep) (CheckoutSession, error) {
	if !step.IsValid() {
		return CheckoutSession{}, myerrors.NewInvalidInputError(fmt.Errorf("unknown checkout step %s", step))
	}
	if step == StepConfirmation {
		return CheckoutSession{}, myerrors.NewInvalidInputError(fmt.Errorf("step %s is reached by submitting the order", step))
	}

	return s.modifySession(c, cartUID, func(session *CheckoutSession) error {
		session.CurrentStep = step
		return nil
	})
}

// SubmitOrder drives the full submission: charge the upfront amount, create
// the order, record the payment and clear the cart. Order creation is the
// commit point: once it succeeds, later failures are logged but do not undo
// the order.
func (s *service) SubmitOrder(c context.Context, cartUID string) (order.Order, error) {
	session, err := s.markSubmitting(c, cartUID)
	if err != nil {
		return order.Order{}, err
	}
	defer s.clearSubmitting(c, cartUID)

	crt, found, err := s.carter.GetCart(c, cartUID)
	if err != nil {
		return order.Order{}, myerrors.NewInternalError(fmt.Errorf("error fetching cart %s: %s", cartUID, err))
	}
	if !found || crt.IsEmpty() {
		return order.Order{}, myerrors.NewInvalidInputError(fmt.Errorf("cart %s is empty", cartUID))
	}

	zone, found, err := s.zones.GetZone(c, session.Form.ZoneUID)
	if err != nil {
		return order.Order{}, myerrors.NewInternalError(fmt.Errorf("error resolving delivery zone: %s", err))
	}
	if !found {
		return order.Order{}, myerrors.NewInvalidInputError(fmt.Errorf("unknown delivery zone %s", session.Form.ZoneUID))
	}

	upfrontAmount := UpfrontAmountInCents(crt.SubtotalInCents(), s.upfrontRatio)

	result, err := s.payer.ProcessPayment(c, session.Form.PhoneNumber, upfrontAmount)
	if err != nil {
		s.returnToPayment(c, cartUID)
		return order.Order{}, err
	}
	if !result.Success {
		s.returnToPayment(c, cartUID)
		return order.Order{}, myerrors.NewUnprocessableError(errors.New(result.ErrorMessage))
	}

	created, err := s.orders.CreateOrder(c, BuildOrderRequest(crt, session.Form, zone, result.TransactionID, s.upfrontRatio))
	if err != nil {
		return order.Order{}, myerrors.NewInternalError(fmt.Errorf("failed to place order: %s", err))
	}

	err = s.orders.RecordPayment(c, created.UID, result.TransactionID, order.PaymentStatusPartial)
	if err != nil {
		s.logger.Log(c, created.UID, mylog.SeverityWarn, "Error recording payment %s on order %s: %s", result.TransactionID, created.UID, err)
	}

	err = s.carter.ClearCart(c, cartUID)
	if err != nil {
		s.logger.Log(c, created.UID, mylog.SeverityWarn, "Error clearing cart %s after order %s, cart needs manual reset: %s", cartUID, created.UID, err)
	}

	_, err = s.modifySession(c, cartUID, func(session *CheckoutSession) error {
		session.CurrentStep = StepConfirmation
		session.OrderUID = created.UID
		return nil
	})
	if err != nil {
		s.logger.Log(c, created.UID, mylog.SeverityWarn, "Error advancing checkout of cart %s to confirmation: %s", cartUID, err)
	}

	s.logger.Log(c, created.UID, mylog.SeverityInfo, "Submitted order %s (%s) for cart %s", created.OrderNumber, created.UID, cartUID)

	return created, nil
}

// markSubmitting sets the in-flight flag, rejecting a second submit while
// the first one has not come back yet.
func (s *service) markSubmitting(c context.Context, cartUID string) (CheckoutSession, error) {
	return s.modifySession(c, cartUID, func(session *CheckoutSession) error {
		if session.Submitting {
			return myerrors.NewConflictError(fmt.Errorf("order submission for cart %s is already in flight", cartUID))
		}
		session.Submitting = true
		return nil
	})
}

func (s *service) clearSubmitting(c context.Context, cartUID string) {
	_, err := s.modifySession(c, cartUID, func(session *CheckoutSession) error {
		session.Submitting = false
		return nil
	})
	if err != nil {
		s.logger.Log(c, cartUID, mylog.SeverityError, "Error clearing in-flight flag of cart %s: %s", cartUID, err)
	}
}

func (s *service) returnToPayment(c context.Context, cartUID string) {
	_, err := s.modifySession(c, cartUID, func(session *CheckoutSession) error {
		session.CurrentStep = StepPayment
		return nil
	})
	if err != nil {
		s.logger.Log(c, cartUID, mylog.SeverityError, "Error returning checkout of cart %s to payment step: %s", cartUID, err)
	}
}

func (s *service) modifySession(c context.Context, cartUID string, modify func(session *CheckoutSession) error) (CheckoutSession, error) {
	var session CheckoutSession
	err := s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		session, found, err = s.sessionStore.Get(c, cartUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("no checkout session for cart %s", cartUID))
		}

		err = modify(&session)
		if err != nil {
			return err
		}

		now := s.nower.Now()
		session.LastUpdated = &now

		err = s.sessionStore.Put(c, cartUID, session)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	return session, nil
}
