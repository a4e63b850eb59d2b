package model

// CartLine is one entry in a customer's cart. LineID is independent of the
// menu item id so the same item can appear as multiple distinct lines.
// UnitPrice is the effective price captured at add-time (variant override
// applied); later catalog edits do not touch lines already in the cart.
type CartLine struct {
	LineID       string   `json:"line_id"`
	MenuItemID   string   `json:"menu_item_id"`
	Name         string   `json:"name"`
	UnitPrice    float64  `json:"unit_price"`
	Quantity     int      `json:"quantity"`
	Variant      *Variant `json:"variant,omitempty"`
	Addons       []Addon  `json:"addons,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// CartResponse is returned when calling GET /cart
type CartResponse struct {
	Lines    []CartLine `json:"lines"`
	Subtotal float64    `json:"subtotal"`
	VAT      float64    `json:"vat"`
	Total    float64    `json:"total"`
}
