package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	// Pending and failed orders remain fully movable; payment retries on a
	// failed order must be able to confirm it.
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusFailed))
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusPending))
	assert.True(t, CanTransition(OrderStatusFailed, OrderStatusConfirmed))
	assert.True(t, CanTransition(OrderStatusFailed, OrderStatusPending))

	// Confirmed is terminal.
	assert.True(t, CanTransition(OrderStatusConfirmed, OrderStatusConfirmed))
	assert.False(t, CanTransition(OrderStatusConfirmed, OrderStatusPending))
	assert.False(t, CanTransition(OrderStatusConfirmed, OrderStatusFailed))

	// Unknown legacy statuses stay writable.
	assert.True(t, CanTransition("shipped", OrderStatusFailed))
}
