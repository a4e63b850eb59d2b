package services

import (
	"context"
	"testing"
	"time"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderStore mirrors the repository contract: the transition is guarded
// by the expected current status and every successful transition appends one
// history entry, newest first.
type fakeOrderStore struct {
	orders  map[string]*model.Order
	history map[string][]model.OrderStatusHistory
}

func newFakeOrderStore(orders ...*model.Order) *fakeOrderStore {
	f := &fakeOrderStore{
		orders:  map[string]*model.Order{},
		history: map[string][]model.OrderStatusHistory{},
	}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeOrderStore) GetAll(ctx context.Context, status string) ([]model.Order, error) {
	orders := []model.Order{}
	for _, o := range f.orders {
		if status == "" || status == "all" || string(o.Status) == status {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

func (f *fakeOrderStore) GetByID(ctx context.Context, id string) (*model.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderStore) TransitionStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	o, ok := f.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	if o.Status != from {
		return repository.ErrStatusChanged
	}
	o.Status = to
	entry := model.OrderStatusHistory{
		OrderID:   orderID,
		OldStatus: from,
		NewStatus: to,
		ChangedAt: time.Now(),
	}
	f.history[orderID] = append([]model.OrderStatusHistory{entry}, f.history[orderID]...)
	return nil
}

func (f *fakeOrderStore) GetHistory(ctx context.Context, orderID string) ([]model.OrderStatusHistory, error) {
	return f.history[orderID], nil
}

func (f *fakeOrderStore) UpdateContact(ctx context.Context, orderID, name, phone, address, notes string) error {
	o, ok := f.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	o.CustomerName = name
	o.CustomerPhone = phone
	o.DeliveryAddress = address
	o.Notes = notes
	return nil
}

func TestRevertRestoresTheMostRecentChange(t *testing.T) {
	store := newFakeOrderStore(&model.Order{ID: "o1", Status: model.StatusPending})
	svc := NewOrderService(store)
	ctx := context.Background()

	require.NoError(t, svc.StartPreparing(ctx, "o1"))
	require.NoError(t, svc.Revert(ctx, "o1"))

	assert.Equal(t, model.StatusPending, store.orders["o1"].Status)
	history, err := svc.GetHistory(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.StatusPreparing, history[0].OldStatus)
	assert.Equal(t, model.StatusPending, history[0].NewStatus)
}

func TestRevertTargetsOnlyTheNewestEntry(t *testing.T) {
	store := newFakeOrderStore(&model.Order{ID: "o1", Status: model.StatusAwaitingConfirmation})
	svc := NewOrderService(store)
	ctx := context.Background()

	require.NoError(t, svc.Confirm(ctx, "o1"))
	require.NoError(t, svc.StartPreparing(ctx, "o1"))
	require.NoError(t, svc.Revert(ctx, "o1"))

	// the revert undoes pending -> preparing, not the older confirmation
	assert.Equal(t, model.StatusPending, store.orders["o1"].Status)
}

func TestRevertWithoutHistoryFails(t *testing.T) {
	store := newFakeOrderStore(&model.Order{ID: "o1", Status: model.StatusPending})
	svc := NewOrderService(store)

	err := svc.Revert(context.Background(), "o1")
	assert.EqualError(t, err, "no status changes to revert")
	assert.Empty(t, store.history["o1"])
}

func TestRevertLosesRaceWhenStatusMovedMeanwhile(t *testing.T) {
	store := newFakeOrderStore(&model.Order{ID: "o1", Status: model.StatusReady})
	store.history["o1"] = []model.OrderStatusHistory{
		{OrderID: "o1", OldStatus: model.StatusPending, NewStatus: model.StatusPreparing},
	}
	svc := NewOrderService(store)

	err := svc.Revert(context.Background(), "o1")
	assert.ErrorIs(t, err, repository.ErrStatusChanged)
	assert.Equal(t, model.StatusReady, store.orders["o1"].Status)
}

func TestEveryTransitionIncludingRevertAppendsOneEntry(t *testing.T) {
	store := newFakeOrderStore(&model.Order{ID: "o1", Status: model.StatusPending})
	svc := NewOrderService(store)
	ctx := context.Background()

	require.NoError(t, svc.StartPreparing(ctx, "o1"))
	require.NoError(t, svc.MarkReady(ctx, "o1"))
	require.NoError(t, svc.Revert(ctx, "o1"))

	history, err := svc.GetHistory(ctx, "o1")
	require.NoError(t, err)
	assert.Len(t, history, 3)
	assert.Equal(t, model.StatusPreparing, store.orders["o1"].Status)
}

func TestUpdateStatusRejectsIllegalEdge(t *testing.T) {
	store := newFakeOrderStore(&model.Order{ID: "o1", Status: model.StatusCompleted})
	svc := NewOrderService(store)

	err := svc.UpdateStatus(context.Background(), "o1", model.StatusPreparing)
	assert.Error(t, err)
	assert.Empty(t, store.history["o1"])
}

func TestCancelFromTerminalStateFails(t *testing.T) {
	store := newFakeOrderStore(&model.Order{ID: "o1", Status: model.StatusCancelled})
	svc := NewOrderService(store)

	err := svc.Cancel(context.Background(), "o1")
	assert.Error(t, err)
	assert.Equal(t, model.StatusCancelled, store.orders["o1"].Status)
}
