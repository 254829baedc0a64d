package services_test

import (
	"fmt"
	"testing"

	"warmleggs/internal/models"
	"warmleggs/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_CreateProductAppliesDefaults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{Title: "Wool Leggings", Price: 49.9}

	mockRepo.On("Create", product).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = "prod-1"
	}).Return(nil).Once()

	id, err := service.CreateProduct(product)

	assert.NoError(t, err)
	assert.Equal(t, "prod-1", id)
	assert.Equal(t, "leggings", product.Category)
	if assert.NotNil(t, product.InStock) {
		assert.True(t, *product.InStock)
	}
	if assert.NotNil(t, product.WarmthRating) {
		assert.Equal(t, 5, *product.WarmthRating)
	}
	assert.False(t, product.Featured)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductKeepsExplicitFields(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	inStock := false
	rating := 2
	product := &models.Product{
		Title:        "Summer Leggings",
		Price:        19.9,
		Category:     "sportswear",
		InStock:      &inStock,
		WarmthRating: &rating,
		Featured:     true,
	}

	mockRepo.On("Create", product).Return(nil).Once()

	_, err := service.CreateProduct(product)

	assert.NoError(t, err)
	assert.Equal(t, "sportswear", product.Category)
	assert.False(t, *product.InStock)
	assert.Equal(t, 2, *product.WarmthRating)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProductRejectsNegativePrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	id, err := service.CreateProduct(&models.Product{Title: "Broken Leggings", Price: -1})

	assert.Error(t, err)
	assert.Empty(t, id)
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Price")
	// Constraint violations must never reach the store.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_CreateProductRejectsWarmthRatingOutOfRange(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	for _, rating := range []int{-1, 6, 42} {
		r := rating
		_, err := service.CreateProduct(&models.Product{Title: "Odd Leggings", Price: 10, WarmthRating: &r})

		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr, "rating %d should be rejected", rating)
		assert.Contains(t, verr.Fields, "WarmthRating")
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_CreateProductCollectsAllViolations(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	rating := 9
	_, err := service.CreateProduct(&models.Product{Price: -5, WarmthRating: &rating})

	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Title")
	assert.Contains(t, verr.Fields, "Price")
	assert.Contains(t, verr.Fields, "WarmthRating")
}

func TestProductService_ListProductsPassesFeaturedFilter(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	featured := true
	expected := []models.Product{{ID: "prod-1", Title: "Front Page Leggings", Price: 30, Featured: true}}

	mockRepo.On("GetAll", &featured).Return(expected, nil).Once()

	products, err := service.ListProducts(&featured)

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProductsUnfiltered(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "prod-1", Title: "Front Page Leggings", Price: 30, Featured: true},
		{ID: "prod-2", Title: "Plain Leggings", Price: 20},
	}

	mockRepo.On("GetAll", (*bool)(nil)).Return(expected, nil).Once()

	products, err := service.ListProducts(nil)

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListProductsStorageError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll", (*bool)(nil)).Return(nil, fmt.Errorf("failed to get all products: connection refused")).Once()

	products, err := service.ListProducts(nil)

	assert.Error(t, err)
	assert.Nil(t, products)
	mockRepo.AssertExpectations(t)
}
