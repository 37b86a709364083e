// Package repositories implements record store access for the domain
// models. Each repository holds an injected *gorm.DB; nothing here
// caches — the store is the sole owner of durable state.
package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/moyashi0060/kittchen-POS-app/app/models"
	"github.com/moyashi0060/kittchen-POS-app/pkg/metrics"
)

// ErrNotFound is returned when a lookup or update matches no record.
var ErrNotFound = errors.New("record not found")

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// All returns every product in store-defined order.
func (r *ProductRepository) All() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID returns the product with the given id, or ErrNotFound.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var product models.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// Create inserts product and fills in its assigned id.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(product).Error
}

// UpdateFields applies a blind shallow merge of columns to the record
// with the given id and returns the driver-reported affected-row
// count. Callers must not treat zero rows as proof of absence: MySQL
// reports 0 for an update that changes nothing.
func (r *ProductRepository) UpdateFields(id uint, fields map[string]any) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete removes the product with the given id. Deleting an absent id
// is a success: the contract is "delete always reports success", not a
// missing existence check.
func (r *ProductRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(&models.Product{}, id).Error
}
