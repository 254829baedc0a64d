package repositories

import (
	"warmleggs/internal/models"
)

// OrderRepository defines the interface for order persistence. Orders are
// insert-only: no read, update or delete operation is exposed.
type OrderRepository interface {
	// Create persists a new order, assigning its ID.
	Create(order *models.Order) error
}
