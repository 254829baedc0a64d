package repositories

import (
	"warmleggs/internal/models"
)

// ProductRepository defines the interface for catalog data access. The
// catalog is insert-and-read only; products are never updated or deleted.
type ProductRepository interface {
	// GetAll returns all products, optionally filtered by the featured
	// flag. No pagination, no ordering guarantee beyond storage order.
	GetAll(featured *bool) ([]models.Product, error)
	// GetByID returns exactly one product, or *models.NotFoundError.
	GetByID(id string) (*models.Product, error)
	// Create persists a new product, assigning its ID.
	Create(product *models.Product) error
}
