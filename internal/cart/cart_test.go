package cart

import (
	"testing"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var burger = model.MenuItem{ID: "m1", Name: "Burger", Price: 10}

func TestAddLineSnapshotsVariantPrice(t *testing.T) {
	c := New()
	variant := &model.Variant{ID: "v1", Name: "Large", Price: 14.5}

	id := c.AddLine(burger, 1, variant, nil, "")

	require.Len(t, c.Lines, 1)
	assert.NotEmpty(t, id)
	assert.Equal(t, 14.5, c.Lines[0].UnitPrice)
}

func TestAddLineNeverMerges(t *testing.T) {
	c := New()
	a := c.AddLine(burger, 1, nil, nil, "")
	b := c.AddLine(burger, 1, nil, nil, "")

	assert.NotEqual(t, a, b)
	assert.Len(t, c.Lines, 2)
}

func TestAddLineClampsQuantity(t *testing.T) {
	c := New()
	c.AddLine(burger, 0, nil, nil, "")
	c.AddLine(burger, -4, nil, nil, "")

	for _, line := range c.Lines {
		assert.GreaterOrEqual(t, line.Quantity, 1)
	}
}

func TestSetQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	c := New()
	a := c.AddLine(burger, 2, nil, nil, "")
	b := c.AddLine(burger, 2, nil, nil, "")

	c.SetQuantity(a, 0)
	c.SetQuantity(b, -3)

	assert.Empty(t, c.Lines)
}

func TestSetQuantityUpdatesInPlace(t *testing.T) {
	c := New()
	id := c.AddLine(burger, 1, nil, nil, "")

	c.SetQuantity(id, 5)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity)
}

func TestRemoveLineIdempotent(t *testing.T) {
	c := New()
	id := c.AddLine(burger, 1, nil, nil, "")

	c.RemoveLine(id)
	c.RemoveLine(id)
	c.RemoveLine("missing")

	assert.Empty(t, c.Lines)
}

func TestSubtotalRoundTrip(t *testing.T) {
	c := New()
	c.AddLine(burger, 3, nil, nil, "")
	before := c.Subtotal()

	id := c.AddLine(burger, 2, nil, []model.Addon{{Name: "Bacon", Price: 2}}, "")
	lineTotal := pricing.LineTotal(c.Lines[1])
	assert.InDelta(t, before+lineTotal, c.Subtotal(), 1e-9)

	c.RemoveLine(id)
	assert.InDelta(t, before, c.Subtotal(), 1e-9)
}

func TestRestoreKeepsLineIdentities(t *testing.T) {
	saved := []model.CartLine{
		{LineID: "l1", MenuItemID: "m1", Name: "Burger", UnitPrice: 10, Quantity: 2},
		{LineID: "l2", MenuItemID: "m2", Name: "Fries", UnitPrice: 4, Quantity: 1},
	}
	c := Restore(saved)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, "l1", c.Lines[0].LineID)
	assert.Equal(t, "l2", c.Lines[1].LineID)

	c.SetQuantity("l2", 4)
	assert.Equal(t, 4, c.Lines[1].Quantity)
}

func TestTotalAppliesVATAndDeliveryFee(t *testing.T) {
	c := New()
	c.AddLine(model.MenuItem{ID: "m1", Name: "Burger", Price: 50}, 2, nil, nil, "")
	settings := model.StoreSettings{VATEnabled: true, VATPercentage: 15}

	assert.Equal(t, 115.0, c.Total(model.ServicePickup, settings))
	assert.Equal(t, 115.0+pricing.DeliveryFeeAmount, c.Total(model.ServiceDelivery, settings))
}
