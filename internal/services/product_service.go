package services

import (
	"warmleggs/internal/models"
	"warmleggs/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListProducts retrieves all products, optionally filtered by the featured
// flag.
func (s *ProductService) ListProducts(featured *bool) ([]models.Product, error) {
	return s.repo.GetAll(featured)
}

// CreateProduct applies schema defaults, validates the product and persists
// it, returning the assigned ID. Constraint violations are rejected before
// any store interaction.
func (s *ProductService) CreateProduct(product *models.Product) (string, error) {
	product.ApplyDefaults()
	if err := s.validate.Struct(product); err != nil {
		return "", asValidationError(err)
	}
	if err := s.repo.Create(product); err != nil {
		return "", err
	}
	return product.ID, nil
}
