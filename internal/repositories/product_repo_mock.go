package repositories

import (
	"sync"

	"warmleggs/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It backs the server when no database DSN is configured, and tests.
type MockProductRepository struct {
	products map[string]models.Product
	ordered  []string // insertion order, so listings are stable
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products, optionally filtered by the featured flag.
func (r *MockProductRepository) GetAll(featured *bool) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.ordered))
	for _, id := range r.ordered {
		p := r.products[id]
		if featured != nil && p.Featured != *featured {
			continue
		}
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, models.NewProductNotFound(id)
	}
	return &product, nil
}

// Create adds a new product, assigning a UUID if none is set.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	r.ordered = append(r.ordered, product.ID)
	return nil
}
