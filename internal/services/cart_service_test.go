package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsFromLinesFoldsAddonsIntoLinePrice(t *testing.T) {
	lines := []model.CartLine{
		{
			LineID:     "l1",
			MenuItemID: "m1",
			Name:       "Burger",
			UnitPrice:  16.50,
			Quantity:   2,
			Variant:    &model.Variant{Name: "Double Patty", Price: 16.50},
			Addons:     []model.Addon{{Name: "Bacon", Price: 2.00}},
		},
		{LineID: "l2", MenuItemID: "m2", Name: "Fries", UnitPrice: 4, Quantity: 1},
	}

	items := itemsFromLines(lines)

	require.Len(t, items, 2)
	assert.Equal(t, 18.50, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Double Patty", items[0].Variant.Name)
	assert.Equal(t, 4.0, items[1].Price)
	assert.Nil(t, items[1].Variant)
}

func TestItemsFromLinesKeepsInstructions(t *testing.T) {
	items := itemsFromLines([]model.CartLine{
		{Name: "Burger", UnitPrice: 10, Quantity: 1, Instructions: "no onions"},
	})
	require.Len(t, items, 1)
	assert.Equal(t, "no onions", items[0].Instructions)
}

func TestItemsFromLinesPreservesCartOrder(t *testing.T) {
	items := itemsFromLines([]model.CartLine{
		{Name: "Burger", UnitPrice: 10, Quantity: 1},
		{Name: "Fries", UnitPrice: 4, Quantity: 1},
		{Name: "Cola", UnitPrice: 2, Quantity: 2},
	})

	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, i+1, it.Position)
	}
}

// fakeOrderPlacer records every code probed and answers from a fixed script.
type fakeOrderPlacer struct {
	alwaysTaken bool
	checked     []string
}

func (f *fakeOrderPlacer) Create(ctx context.Context, o *model.Order, inTx func(pgx.Tx) error) error {
	return nil
}

func (f *fakeOrderPlacer) CodeInUse(ctx context.Context, code string) (bool, error) {
	f.checked = append(f.checked, code)
	return f.alwaysTaken, nil
}

func TestGenerateOrderCodeUsesShortCodeWhenFree(t *testing.T) {
	placer := &fakeOrderPlacer{}
	svc := &CartService{OrderRepo: placer}

	code, err := svc.generateOrderCode(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^#\d{3}$`), code)
	assert.Len(t, placer.checked, 1)
}

func TestGenerateOrderCodeFallsBackAfterCollisions(t *testing.T) {
	placer := &fakeOrderPlacer{alwaysTaken: true}
	svc := &CartService{OrderRepo: placer}

	code, err := svc.generateOrderCode(context.Background())
	require.NoError(t, err)
	// every short code was taken by an active order, so the fallback is a
	// longer code never checked against the table
	assert.Regexp(t, regexp.MustCompile(`^#\d{5}$`), code)
	assert.Len(t, placer.checked, orderCodeAttempts)
}
