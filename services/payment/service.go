package payment

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/myrandom"
	"github.com/goldencrumb/bakerybackend/lib/mytime"
)

var (
	// Leading-zero local mobile number or the 12-digit form with country code.
	phoneRegexp     = regexp.MustCompile(`^(0\d{9}|\d{12})$`)
	nonDigitsRegexp = regexp.MustCompile(`\D`)
)

type service struct {
	config Config
	nower  mytime.Nower
	rander myrandom.Randomizer
	sleep  func(d time.Duration)
	logger mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(config Config, nower mytime.Nower, rander myrandom.Randomizer, logger mylog.Logger) *service {
	return &service{
		config: config,
		nower:  nower,
		rander: rander,
		sleep:  time.Sleep,
		logger: logger,
	}
}

// ProcessPayment validates the input synchronously, then models provider
// latency with a randomized delay before resolving the simulated outcome.
// Validation failures are returned as errors without any delay; a simulated
// decline is not an error but an unsuccessful PaymentResult.
func (s *service) ProcessPayment(c context.Context, phoneNumber string, amountInCents int) (PaymentResult, error) {
	digits := nonDigitsRegexp.ReplaceAllString(phoneNumber, "")
	if !phoneRegexp.MatchString(digits) {
		return PaymentResult{}, myerrors.NewInvalidInputError(fmt.Errorf("invalid mobile number %q", phoneNumber))
	}
	if amountInCents <= 0 {
		return PaymentResult{}, myerrors.NewInvalidInputError(fmt.Errorf("invalid amount %d", amountInCents))
	}

	s.logger.Log(c, digits, mylog.SeverityInfo, "Charging %d cents on %s", amountInCents, digits)

	s.sleep(s.processingDelay())

	if s.rander.Float64() >= s.config.SuccessRate {
		s.logger.Log(c, digits, mylog.SeverityWarn, "Payment of %d cents declined", amountInCents)

		return PaymentResult{
			Success:      false,
			ErrorMessage: "insufficient balance on mobile-money account",
		}, nil
	}

	result := PaymentResult{
		Success:       true,
		TransactionID: s.newTransactionID(),
	}

	s.logger.Log(c, digits, mylog.SeverityInfo, "Payment of %d cents succeeded: %s", amountInCents, result.TransactionID)

	return result, nil
}

func (s *service) processingDelay() time.Duration {
	spread := s.config.MaxDelay - s.config.MinDelay
	if spread <= 0 {
		return s.config.MinDelay
	}
	return s.config.MinDelay + time.Duration(s.rander.IntN(int(spread)))
}

// newTransactionID combines a time-based prefix with a random suffix, so two
// payments within the same millisecond still get distinct ids.
func (s *service) newTransactionID() string {
	return fmt.Sprintf("TXN-%d-%06d", s.nower.Now().UnixMilli(), s.rander.IntN(1000000))
}
