package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moyashi0060/kittchen-POS-app/app/models"
	"github.com/moyashi0060/kittchen-POS-app/pkg/metrics"
)

// sortableOrderColumns whitelists the columns a caller may sort order
// listings by; anything else falls back to created_date.
var sortableOrderColumns = map[string]bool{
	"id":           true,
	"order_number": true,
	"status":       true,
	"total_amount": true,
	"created_date": true,
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns up to limit orders sorted by the given column.
func (r *OrderRepository) List(sortColumn string, descending bool, limit int) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	if !sortableOrderColumns[sortColumn] {
		sortColumn = "created_date"
	}

	var orders []models.Order
	err := r.db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortColumn}, Desc: descending}).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// CompletedBetween returns orders whose created_date lies in
// [start, end] (inclusive) and whose status is exactly "completed".
func (r *OrderRepository) CompletedBetween(start, end time.Time) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := r.db.
		Where("created_date >= ? AND created_date <= ?", start, end).
		Where("status = ?", models.StatusCompleted).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByID returns the order with the given id, or ErrNotFound.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	err := r.db.First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrNotFound
	}
	return order, err
}

// Create inserts order and fills in its assigned id.
func (r *OrderRepository) Create(order *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(order).Error
}

// UpdateFields blindly merges columns into the record with the given
// id and returns the driver-reported affected-row count. Zero rows is
// not proof of absence: MySQL reports 0 for a no-op update.
func (r *OrderRepository) UpdateFields(id uint, fields map[string]any) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())

	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete removes the order with the given id; absent ids succeed.
func (r *OrderRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return r.db.Delete(&models.Order{}, id).Error
}
