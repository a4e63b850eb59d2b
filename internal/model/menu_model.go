package model

import "time"

// MenuItem represents a row in the menu_items table. Variants and addons are
// stored as jsonb and decoded into typed slices at the repository boundary.
type MenuItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"image_url"`
	Category    string     `json:"category"`
	Popular     bool       `json:"popular"`
	InStock     bool       `json:"in_stock"`
	Variants    []Variant  `json:"variants,omitempty"`
	Addons      []Addon    `json:"addons,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Variant is a mutually-exclusive option whose price replaces the item's base price.
type Variant struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Addon is an optional extra whose price is added on top of the unit price.
type Addon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CategoryItem represents a row in the categories table.
type CategoryItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ImageURL     string `json:"image_url,omitempty"`
	DisplayOrder int    `json:"display_order"`
}
