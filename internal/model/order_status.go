package model

// OrderStatus represents where an order sits in its lifecycle.
type OrderStatus string

const (
	// StatusAwaitingConfirmation is the initial state when a confirmation webhook is configured.
	StatusAwaitingConfirmation OrderStatus = "awaiting_confirmation"
	// StatusPending indicates the order has been received but not started.
	StatusPending OrderStatus = "pending"
	// StatusPreparing indicates the kitchen is working on the order.
	StatusPreparing OrderStatus = "preparing"
	// StatusReady indicates the order is ready for pickup or dispatch.
	StatusReady OrderStatus = "ready"
	// StatusCompleted indicates the order was handed over. Terminal.
	StatusCompleted OrderStatus = "completed"
	// StatusCancelled indicates the order was cancelled. Terminal.
	StatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusAwaitingConfirmation, StatusPending, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// transitions lists the legal forward edges of the lifecycle. Cancellation is
// handled separately: it is allowed from any non-terminal state.
var transitions = map[OrderStatus][]OrderStatus{
	StatusAwaitingConfirmation: {StatusPending},
	StatusPending:              {StatusPreparing},
	StatusPreparing:            {StatusReady},
	StatusReady:                {StatusCompleted},
}

// CanTransition reports whether moving from one status to another is legal.
// A revert (moving back along a recorded edge) is validated by the order
// service against the history trail, not here.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return false
	}
	if to == StatusCancelled {
		return !from.Terminal()
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
