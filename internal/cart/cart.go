// Package cart holds the in-memory cart aggregate for one customer session.
// Persistence is a repository concern; the aggregate only enforces the cart
// invariants: quantity >= 1 for every present line, insertion order is
// display order, and unit prices are snapshots captured at add-time.
package cart

import (
	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/pricing"
	"github.com/google/uuid"
)

type Cart struct {
	Lines []model.CartLine
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: []model.CartLine{}}
}

// Restore rebuilds a cart from persisted lines, keeping line ids and order.
func Restore(lines []model.CartLine) *Cart {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return &Cart{Lines: lines}
}

// NewLine builds a cart line from a menu item and the customer's selection.
// The line gets a fresh id, the quantity is clamped to at least 1, and the
// unit price snapshot has the variant override already applied.
func NewLine(item model.MenuItem, quantity int, variant *model.Variant, addons []model.Addon, instructions string) model.CartLine {
	if quantity < 1 {
		quantity = 1
	}
	return model.CartLine{
		LineID:       uuid.NewString(),
		MenuItemID:   item.ID,
		Name:         item.Name,
		UnitPrice:    pricing.EffectiveUnitPrice(item, variant),
		Quantity:     quantity,
		Variant:      variant,
		Addons:       addons,
		Instructions: instructions,
	}
}

// AddLine appends a new line and returns its id. Identical selections are not
// merged; every add produces a distinct line.
func (c *Cart) AddLine(item model.MenuItem, quantity int, variant *model.Variant, addons []model.Addon, instructions string) string {
	line := NewLine(item, quantity, variant, addons, instructions)
	c.Lines = append(c.Lines, line)
	return line.LineID
}

// RemoveLine deletes the line with the given id. Removing an absent line is a no-op.
func (c *Cart) RemoveLine(lineID string) {
	for i, line := range c.Lines {
		if line.LineID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity updates a line's quantity in place; a quantity of 0 or less
// removes the line, so no negative-quantity line can ever exist.
func (c *Cart) SetQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(lineID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = []model.CartLine{}
}

// Subtotal is the sum of line totals before VAT and fees.
func (c *Cart) Subtotal() float64 {
	return pricing.CartSubtotal(c.Lines)
}

// Total is subtotal + VAT + delivery fee for the given service option.
func (c *Cart) Total(serviceOption string, settings model.StoreSettings) float64 {
	return pricing.CartTotal(c.Lines, serviceOption, settings)
}
