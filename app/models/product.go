package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. Price is optional: a product without a
// price participates in orders but contributes zero to sales totals.
type Product struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:255;not null;index" json:"name"`
	Category    string           `gorm:"size:100;not null;index" json:"category"`
	Price       *decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	ImageURL    string           `gorm:"size:1024" json:"image_url"`
	IsActive    bool             `gorm:"not null;default:true" json:"is_active"`
	Description string           `gorm:"type:text" json:"description"`
}

func (Product) TableName() string { return "products" }

// PriceOrZero returns the product's price, or zero when unset.
func (p Product) PriceOrZero() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}
