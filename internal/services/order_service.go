package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AkumaMonarch/NekoEats/internal/model"
)

// OrderStore is the slice of the order repository the lifecycle service
// drives. TransitionStatus must be guarded: it fails when the order is no
// longer in the expected status.
type OrderStore interface {
	GetAll(ctx context.Context, status string) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	TransitionStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error
	GetHistory(ctx context.Context, orderID string) ([]model.OrderStatusHistory, error)
	UpdateContact(ctx context.Context, orderID, name, phone, address, notes string) error
}

type OrderService struct {
	Repo OrderStore
}

func NewOrderService(r OrderStore) *OrderService {
	return &OrderService{Repo: r}
}

func (s *OrderService) GetAll(ctx context.Context, status string) ([]model.Order, error) {
	if status != "" && status != "all" && !model.OrderStatus(status).Valid() {
		return nil, errors.New("unknown status filter")
	}
	return s.Repo.GetAll(ctx, status)
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateStatus drives the order through one legal edge of the lifecycle.
// The repository's guarded update makes concurrent admin actions safe: the
// loser of a race gets ErrStatusChanged instead of clobbering the winner.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, to model.OrderStatus) error {
	if !to.Valid() {
		return errors.New("unknown order status")
	}
	order, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !model.CanTransition(order.Status, to) {
		return fmt.Errorf("cannot move order from %s to %s", order.Status, to)
	}
	return s.Repo.TransitionStatus(ctx, orderID, order.Status, to)
}

// Confirm moves a webhook-gated order into the normal flow.
func (s *OrderService) Confirm(ctx context.Context, orderID string) error {
	return s.Repo.TransitionStatus(ctx, orderID, model.StatusAwaitingConfirmation, model.StatusPending)
}

// StartPreparing is the admin "start" action; it only succeeds from pending.
func (s *OrderService) StartPreparing(ctx context.Context, orderID string) error {
	return s.Repo.TransitionStatus(ctx, orderID, model.StatusPending, model.StatusPreparing)
}

func (s *OrderService) MarkReady(ctx context.Context, orderID string) error {
	return s.Repo.TransitionStatus(ctx, orderID, model.StatusPreparing, model.StatusReady)
}

func (s *OrderService) Complete(ctx context.Context, orderID string) error {
	return s.Repo.TransitionStatus(ctx, orderID, model.StatusReady, model.StatusCompleted)
}

// Cancel is allowed from any non-terminal state.
func (s *OrderService) Cancel(ctx context.Context, orderID string) error {
	order, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !model.CanTransition(order.Status, model.StatusCancelled) {
		return fmt.Errorf("cannot cancel a %s order", order.Status)
	}
	return s.Repo.TransitionStatus(ctx, orderID, order.Status, model.StatusCancelled)
}

func (s *OrderService) GetHistory(ctx context.Context, orderID string) ([]model.OrderStatusHistory, error) {
	return s.Repo.GetHistory(ctx, orderID)
}

// Revert restores the order to the old status of its most recent history
// entry. Older entries are display-only. The revert itself is recorded as a
// new history entry; the trail is append-only even though the UI calls this
// "undo".
func (s *OrderService) Revert(ctx context.Context, orderID string) error {
	history, err := s.Repo.GetHistory(ctx, orderID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return errors.New("no status changes to revert")
	}
	latest := history[0]
	return s.Repo.TransitionStatus(ctx, orderID, latest.NewStatus, latest.OldStatus)
}

type EditOrderRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	DeliveryAddress string `json:"delivery_address"`
	Notes           string `json:"notes"`
}

// Edit updates the customer-facing contact fields. Status and items are
// untouchable through this path.
func (s *OrderService) Edit(ctx context.Context, orderID string, req EditOrderRequest) error {
	if req.CustomerName == "" {
		return errors.New("customer name is required")
	}
	if req.CustomerPhone == "" {
		return errors.New("customer phone is required")
	}
	order, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ServiceOption == model.ServiceDelivery && req.DeliveryAddress == "" {
		return errors.New("delivery address is required for delivery orders")
	}
	return s.Repo.UpdateContact(ctx, orderID, req.CustomerName, req.CustomerPhone, req.DeliveryAddress, req.Notes)
}
