package model

import "time"

// ServiceOption is the fulfillment mode of an order.
const (
	ServiceDelivery = "delivery"
	ServicePickup   = "pickup"
)

// Order represents an entry in the orders table. Items are a snapshot taken
// at checkout, decoupled from the live cart. Status is the only field admin
// transitions mutate; contact fields go through the separate edit path.
type Order struct {
	ID              string      `json:"id"`
	OrderCode       string      `json:"order_code"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	Items           []OrderItem `json:"items,omitempty"`
	Total           float64     `json:"total"`
	VATAmount       float64     `json:"vat_amount"`
	Status          OrderStatus `json:"status"`
	PaymentMethod   string      `json:"payment_method"`
	ServiceOption   string      `json:"service_option"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem represents a row in the order_items table. Variant and addons are
// typed snapshots validated when the row is written, not free-shaped json.
// Position is 1-based and preserves the cart's display order.
type OrderItem struct {
	ID           string   `json:"id"`
	OrderID      string   `json:"order_id"`
	Position     int      `json:"-"`
	MenuItemID   string   `json:"menu_item_id"`
	Name         string   `json:"name"`
	Quantity     int      `json:"quantity"`
	Price        float64  `json:"price"`
	Category     string   `json:"category,omitempty"`
	Variant      *Variant `json:"selected_variant,omitempty"`
	Addons       []Addon  `json:"selected_addons,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// OrderStatusHistory is one entry in the append-only status audit trail.
// Entries are read newest-first; only the newest one may be reverted.
type OrderStatusHistory struct {
	ID        string      `json:"id"`
	OrderID   string      `json:"order_id"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	ChangedAt time.Time   `json:"changed_at"`
}
