package models

// Collection names are declared here, once, and referenced from the models'
// TableName methods and the /schema endpoint. No name is ever derived from
// a type name at runtime.
const (
	CollectionProduct = "product"
	CollectionOrder   = "order"
)

// FieldInfo describes one field of a collection for schema introspection.
type FieldInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Default  any    `json:"default,omitempty"`
}

// Collections maps each collection name to its field metadata. The /schema
// endpoint serves this map verbatim; it is static and is not consulted by
// any business logic.
var Collections = map[string][]FieldInfo{
	CollectionProduct: {
		{Name: "title", Type: "string", Required: true},
		{Name: "description", Type: "string"},
		{Name: "price", Type: "float", Required: true},
		{Name: "category", Type: "string", Default: "leggings"},
		{Name: "in_stock", Type: "bool", Default: true},
		{Name: "images", Type: "[]string"},
		{Name: "colors", Type: "[]string"},
		{Name: "sizes", Type: "[]string"},
		{Name: "featured", Type: "bool", Default: false},
		{Name: "warmth_rating", Type: "int", Default: 5},
		{Name: "fabric", Type: "string"},
		{Name: "sku", Type: "string"},
	},
	CollectionOrder: {
		{Name: "items", Type: "[]order_item", Required: true},
		{Name: "customer_name", Type: "string", Required: true},
		{Name: "customer_email", Type: "string", Required: true},
		{Name: "shipping_address", Type: "string", Required: true},
		{Name: "subtotal", Type: "float", Required: true},
		{Name: "shipping_cost", Type: "float", Default: 0},
		{Name: "total", Type: "float", Required: true},
		{Name: "status", Type: "string", Default: "pending"},
		{Name: "notes", Type: "string"},
	},
}

// CollectionNames returns the declared collection names in a stable order.
func CollectionNames() []string {
	return []string{CollectionProduct, CollectionOrder}
}
