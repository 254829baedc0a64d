package models

import "gorm.io/gorm"

// OrderItem is an immutable snapshot of a purchased line. Title and price
// are copied from the product at purchase time and never re-read, so later
// catalog changes cannot rewrite order history. ProductID is kept only as a
// back-reference for lookup and audit.
type OrderItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Color     string  `json:"color,omitempty"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity" validate:"min=1"`
}

// Order is a completed checkout. Items are owned by value and stored as a
// JSON column; the order never references product rows. Orders are
// insert-only: no update or delete path exists.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Items           []OrderItem `json:"items" gorm:"serializer:json" validate:"required,min=1,dive"`
	CustomerName    string      `json:"customer_name" validate:"required"`
	CustomerEmail   string      `json:"customer_email" validate:"required"`
	ShippingAddress string      `json:"shipping_address" validate:"required"`
	Subtotal        float64     `json:"subtotal" validate:"gte=0"`
	ShippingCost    float64     `json:"shipping_cost" validate:"gte=0"`
	Total           float64     `json:"total" validate:"gte=0"`
	Status          string      `json:"status"`
	Notes           string      `json:"notes,omitempty"`
	gorm.Model      `json:"-"`
}

// TableName pins the storage collection explicitly.
func (Order) TableName() string { return CollectionOrder }
