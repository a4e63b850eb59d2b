package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionForwardEdges(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{StatusAwaitingConfirmation, StatusPending, true},
		{StatusPending, StatusPreparing, true},
		{StatusPreparing, StatusReady, true},
		{StatusReady, StatusCompleted, true},

		// skipping states is illegal
		{StatusAwaitingConfirmation, StatusCompleted, false},
		{StatusAwaitingConfirmation, StatusPreparing, false},
		{StatusPending, StatusReady, false},
		{StatusPending, StatusCompleted, false},

		// no self transitions, no backwards moves
		{StatusPending, StatusPending, false},
		{StatusReady, StatusPreparing, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCancelAllowedFromAnyNonTerminalState(t *testing.T) {
	for _, from := range []OrderStatus{StatusAwaitingConfirmation, StatusPending, StatusPreparing, StatusReady} {
		assert.True(t, CanTransition(from, StatusCancelled), "cancel from %s", from)
	}
	assert.False(t, CanTransition(StatusCompleted, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusCancelled))
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []OrderStatus{StatusAwaitingConfirmation, StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}
	for _, terminal := range []OrderStatus{StatusCompleted, StatusCancelled} {
		for _, to := range all {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPreparing.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
}
