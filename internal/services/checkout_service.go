package services

import (
	"log"

	"warmleggs/internal/models"
	"warmleggs/internal/repositories"
	"warmleggs/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
)

// Shipping is a flat fee waived above a subtotal threshold. There is no
// weight or distance model.
const (
	FreeShippingThreshold = 100.0
	FlatShippingCost      = 10.0
)

// CheckoutService turns a cart plus customer details into a persisted
// order. This is the only piece of business logic in the system.
type CheckoutService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
	validate    *validator.Validate
}

// NewCheckoutService creates a new CheckoutService. mqClient may be nil,
// in which case no order events are published.
func NewCheckoutService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
		validate:    validator.New(),
	}
}

// Checkout resolves every cart line against the catalog, snapshots title
// and price into order items, computes the totals and persists the order,
// returning its assigned ID.
//
// The checkout is all-or-nothing: any unresolvable product aborts it with
// *models.NotFoundError before anything is written. The single write is the
// final order insert, so no partial state can exist and no rollback is
// needed.
func (s *CheckoutService) Checkout(req models.CheckoutRequest) (string, error) {
	req.ApplyDefaults()
	if err := s.validate.Struct(req); err != nil {
		return "", asValidationError(err)
	}

	var subtotal float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return "", err
		}

		// Freeze title and price now; later catalog edits must not
		// change what this order says was bought.
		subtotal += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Title:     product.Title,
			Price:     product.Price,
			Color:     item.Color,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	shippingCost := FlatShippingCost
	if subtotal >= FreeShippingThreshold {
		shippingCost = 0
	}

	order := &models.Order{
		Items:           orderItems,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Subtotal:        subtotal,
		ShippingCost:    shippingCost,
		Total:           subtotal + shippingCost,
		Status:          "pending",
		Notes:           req.Notes,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return "", err
	}

	// Event publication is best-effort: the order is already persisted,
	// so a broker failure must not fail the checkout.
	if s.mqClient != nil {
		event := map[string]interface{}{
			"order_id": order.ID,
			"status":   order.Status,
			"subtotal": order.Subtotal,
			"total":    order.Total,
		}
		if err := s.mqClient.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order.ID, nil
}
