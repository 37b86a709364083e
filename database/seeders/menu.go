package seeders

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/moyashi0060/kittchen-POS-app/app/models"
)

func init() {
	Register("menu", SeedMenu)
}

// SeedMenu inserts a starter menu so a fresh install has something to
// sell. Skipped when any products already exist.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	price := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}

	menu := []models.Product{
		{Name: "Curry Rice", Category: "mains", Price: price(750), IsActive: true},
		{Name: "Fried Chicken Set", Category: "mains", Price: price(880), IsActive: true},
		{Name: "Miso Soup", Category: "sides", Price: price(150), IsActive: true},
		{Name: "Rice Ball", Category: "sides", Price: price(180), IsActive: true},
		{Name: "Green Tea", Category: "drinks", Price: price(120), IsActive: true},
		{Name: "Oolong Tea", Category: "drinks", Price: price(120), IsActive: true},
		{Name: "Pudding", Category: "desserts", Price: price(250), IsActive: true},
	}

	return db.Create(&menu).Error
}
