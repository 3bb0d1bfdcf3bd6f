package payment

import "time"

// Config carries the policy knobs of the simulator. The defaults mimic a
// mobile-money provider: a few seconds of latency and an occasional decline.
type Config struct {
	SuccessRate float64
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

func NewConfig() Config {
	return Config{
		SuccessRate: 0.9,
		MinDelay:    2 * time.Second,
		MaxDelay:    5 * time.Second,
	}
}

// PaymentResult either carries a transaction id (success) or a user-facing
// decline message, never both.
type PaymentResult struct {
	Success       bool
	TransactionID string
	ErrorMessage  string
}
