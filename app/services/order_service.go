package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moyashi0060/kittchen-POS-app/app/models"
	"github.com/moyashi0060/kittchen-POS-app/app/repositories"
	"github.com/moyashi0060/kittchen-POS-app/pkg/apperr"
	"github.com/moyashi0060/kittchen-POS-app/pkg/metrics"
	"github.com/moyashi0060/kittchen-POS-app/pkg/token"
)

const (
	defaultOrderSort  = "-created_date"
	defaultOrderLimit = 100
)

// OrderStore is the record store surface the order manager needs.
type OrderStore interface {
	List(sortColumn string, descending bool, limit int) ([]models.Order, error)
	FindByID(id uint) (models.Order, error)
	Create(order *models.Order) error
	UpdateFields(id uint, fields map[string]any) (int64, error)
	Delete(id uint) error
}

// CreateOrderInput is the accepted shape for order creation.
// created_date is not part of it: the server stamps it.
type CreateOrderInput struct {
	OrderNumber string           `json:"order_number"`
	Items       models.LineItems `json:"items"`
	Status      string           `json:"status"`
	Notes       string           `json:"notes"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
}

// orderColumns maps updatable JSON field names to store columns.
// created_date is immutable after creation and deliberately absent.
var orderColumns = map[string]string{
	"order_number": "order_number",
	"items":        "items",
	"status":       "status",
	"notes":        "notes",
	"total_amount": "total_amount",
}

type OrderService struct {
	orders OrderStore
	now    func() time.Time
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders, now: time.Now}
}

// WithClock overrides the creation timestamp source; used in tests.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// List returns up to limit orders sorted by sort. A leading "-" on the
// sort key selects descending order. Defaults: most recent first, 100
// rows.
func (s *OrderService) List(sort string, limit int) ([]models.Order, error) {
	if sort == "" {
		sort = defaultOrderSort
	}
	if limit <= 0 {
		limit = defaultOrderLimit
	}

	column, descending := strings.CutPrefix(sort, "-")

	orders, err := s.orders.List(column, descending, limit)
	if err != nil {
		return nil, apperr.Store(err, "fetch orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Create validates and persists a new order. The order number defaults
// to a generated 8-character token — collision risk is accepted, the
// store does not enforce uniqueness. Status defaults to "pending" but
// is otherwise an open string; whatever the caller sends is stored.
func (s *OrderService) Create(input CreateOrderInput) (models.Order, error) {
	if len(input.Items) == 0 {
		return models.Order{}, apperr.Validationf("items is required")
	}

	order := models.Order{
		OrderNumber: input.OrderNumber,
		Items:       input.Items,
		Status:      input.Status,
		Notes:       input.Notes,
		TotalAmount: input.TotalAmount,
		CreatedDate: s.now().UTC(),
	}
	if order.OrderNumber == "" {
		order.OrderNumber = token.OrderNumber()
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}

	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, apperr.Store(err, "create order")
	}

	metrics.OrdersCreated.Inc()
	return order, nil
}

// Update blindly merges the given fields into the order, including
// status and items — there is no transition validation by design.
func (s *OrderService) Update(id uint, fields map[string]any) (models.Order, error) {
	columns := pickColumns(fields, orderColumns)

	// The items column is stored as a JSON document; re-encode the
	// caller's value so the store receives text, not a Go slice.
	if items, ok := columns["items"]; ok {
		data, err := json.Marshal(items)
		if err != nil {
			return models.Order{}, apperr.Validationf("items is not valid JSON")
		}
		columns["items"] = string(data)
	}

	if len(columns) == 0 {
		order, err := s.orders.FindByID(id)
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Order{}, apperr.NotFoundf("order not found")
		}
		if err != nil {
			return models.Order{}, apperr.Store(err, "fetch order")
		}
		return order, nil
	}

	if _, err := s.orders.UpdateFields(id, columns); err != nil {
		return models.Order{}, apperr.Store(err, "update order")
	}

	// The affected-row count cannot distinguish an absent id from a
	// no-op merge (MySQL reports 0 rows when nothing changed), so the
	// follow-up read decides existence.
	order, err := s.orders.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Order{}, apperr.NotFoundf("order not found")
	}
	if err != nil {
		return models.Order{}, apperr.Store(err, "fetch order")
	}
	return order, nil
}

// Delete removes an order by id; absent ids succeed.
func (s *OrderService) Delete(id uint) error {
	if err := s.orders.Delete(id); err != nil {
		return apperr.Store(err, "delete order")
	}
	return nil
}
