package pricing

import (
	"testing"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveUnitPriceVariantOverrides(t *testing.T) {
	item := model.MenuItem{Name: "Burger", Price: 10}
	variant := &model.Variant{ID: "v1", Name: "Large", Price: 14.5}

	assert.Equal(t, 14.5, EffectiveUnitPrice(item, variant))
	assert.Equal(t, 10.0, EffectiveUnitPrice(item, nil))
}

func TestAddonsTotal(t *testing.T) {
	assert.Equal(t, 0.0, AddonsTotal(nil))
	assert.Equal(t, 3.5, AddonsTotal([]model.Addon{
		{Name: "Cheese", Price: 1.5},
		{Name: "Bacon", Price: 2.0},
	}))
}

func TestLineTotalAddonsAdditive(t *testing.T) {
	line := model.CartLine{
		UnitPrice: 10,
		Quantity:  2,
		Addons: []model.Addon{
			{Name: "Cheese", Price: 1.5},
			{Name: "Bacon", Price: 2.0},
		},
	}
	assert.Equal(t, 27.0, LineTotal(line))
}

func TestLineTotalDoublePattyScenario(t *testing.T) {
	// Variant price equals base price here; the override still applies and
	// addons remain additive.
	item := model.MenuItem{Name: "Burger", Price: 16.50}
	variant := &model.Variant{Name: "Double Patty", Price: 16.50}
	line := model.CartLine{
		UnitPrice: EffectiveUnitPrice(item, variant),
		Quantity:  2,
		Addons:    []model.Addon{{Name: "Bacon", Price: 2.00}},
	}
	assert.Equal(t, 37.0, LineTotal(line))
}

func TestVATAmount(t *testing.T) {
	enabled := model.StoreSettings{VATEnabled: true, VATPercentage: 15}
	disabled := model.StoreSettings{VATEnabled: false, VATPercentage: 15}

	assert.Equal(t, 15.0, VATAmount(100, enabled))
	assert.Equal(t, 0.0, VATAmount(100, disabled))
}

func TestCartTotalWithVATAndDeliveryFee(t *testing.T) {
	lines := []model.CartLine{{UnitPrice: 50, Quantity: 2}}
	settings := model.StoreSettings{VATEnabled: true, VATPercentage: 15}

	assert.Equal(t, 115.0, CartTotal(lines, model.ServicePickup, settings))
	assert.Equal(t, 115.0+DeliveryFeeAmount, CartTotal(lines, model.ServiceDelivery, settings))
}

func TestCartSubtotalAddRemoveRoundTrip(t *testing.T) {
	base := []model.CartLine{
		{UnitPrice: 4.2, Quantity: 3},
		{UnitPrice: 9.9, Quantity: 1, Addons: []model.Addon{{Price: 0.5}}},
	}
	added := model.CartLine{UnitPrice: 7.25, Quantity: 2, Addons: []model.Addon{{Price: 1.1}}}

	before := CartSubtotal(base)
	after := CartSubtotal(append(append([]model.CartLine{}, base...), added))
	assert.InDelta(t, LineTotal(added), after-before, 1e-9)
}
