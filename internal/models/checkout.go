package models

// CartItem is a client-supplied request to purchase a given product in a
// given quantity and variant. Quantity defaults to 1 when omitted.
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// CheckoutRequest is the full checkout payload: the cart plus customer and
// shipping details.
type CheckoutRequest struct {
	Items           []CartItem `json:"items" validate:"required,min=1,dive"`
	CustomerName    string     `json:"customer_name" validate:"required"`
	CustomerEmail   string     `json:"customer_email" validate:"required"`
	ShippingAddress string     `json:"shipping_address" validate:"required"`
	Notes           string     `json:"notes"`
}

// ApplyDefaults normalizes omitted quantities to 1 before validation, so a
// cart line without an explicit quantity buys a single unit rather than
// failing the min=1 constraint.
func (r *CheckoutRequest) ApplyDefaults() {
	for i := range r.Items {
		if r.Items[i].Quantity == 0 {
			r.Items[i].Quantity = 1
		}
	}
}
