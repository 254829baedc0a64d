package models

import "gorm.io/gorm"

// Product represents a catalog entry. Products are created once and read by
// listing and by checkout resolution; there is no update or delete path.
type Product struct {
	ID           string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"gte=0"`
	Category     string   `json:"category"`
	InStock      *bool    `json:"in_stock"`
	Images       []string `json:"images" gorm:"serializer:json"`
	Colors       []string `json:"colors" gorm:"serializer:json"`
	Sizes        []string `json:"sizes" gorm:"serializer:json"`
	Featured     bool     `json:"featured"`
	WarmthRating *int     `json:"warmth_rating" validate:"omitempty,min=1,max=5"`
	Fabric       string   `json:"fabric"`
	SKU          string   `json:"sku"`
	gorm.Model   `json:"-"` // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// TableName pins the storage collection explicitly instead of relying on
// GORM's pluralized naming convention.
func (Product) TableName() string { return CollectionProduct }

// ApplyDefaults fills the fields the catalog schema declares defaults for.
// Called before validation so a minimal request body still produces a
// complete product.
func (p *Product) ApplyDefaults() {
	if p.Category == "" {
		p.Category = "leggings"
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if p.WarmthRating == nil {
		rating := 5
		p.WarmthRating = &rating
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
}
