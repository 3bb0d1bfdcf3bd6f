package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	successors := map[OrderStatus]OrderStatus{
		StatusReceived:   StatusConfirmed,
		StatusConfirmed:  StatusPreparing,
		StatusPreparing:  StatusReady,
		StatusReady:      StatusDispatched,
		StatusDispatched: StatusDelivered,
	}

	// Every (from, to) pair: only the immediate successor is allowed, plus
	// cancellation from any non-terminal status.
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			want := false
			if !from.IsTerminal() {
				if to == StatusCancelled {
					want = true
				} else if successors[from] == to {
					want = true
				}
			}

			got := from.CanTransitionTo(to)
			assert.Equal(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusReceived.IsTerminal())
	assert.False(t, StatusDispatched.IsTerminal())
}

func TestStatusMappingsAreTotal(t *testing.T) {
	for _, status := range AllStatuses() {
		assert.True(t, status.IsValid(), "%s", status)
		assert.NotEmpty(t, status.Label(), "label for %s", status)
		assert.NotEmpty(t, status.Color(), "color for %s", status)
	}

	assert.False(t, OrderStatus("baking").IsValid())
}

func TestInvalidTransitionError(t *testing.T) {
	err := InvalidTransitionError{OrderUID: "123", From: StatusReceived, To: StatusReady}

	assert.Equal(t, "order 123 cannot move from received to ready", err.Error())
}
