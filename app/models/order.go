package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Well-known order statuses. The status column is an open string: any
// value is accepted and stored as-is, these constants only name the
// ones the system itself cares about. Only StatusCompleted counts
// toward sales totals.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Order is a persisted order. TotalAmount is caller-supplied and never
// recomputed from the items; it is a denormalized display value the
// POS frontend owns.
type Order struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	OrderNumber string           `gorm:"size:64;index" json:"order_number"`
	Items       LineItems        `gorm:"type:text;not null" json:"items"`
	Status      string           `gorm:"size:50;not null;default:pending;index" json:"status"`
	Notes       string           `gorm:"type:text" json:"notes"`
	TotalAmount *decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	CreatedDate time.Time        `gorm:"not null;index" json:"created_date"`
}

func (Order) TableName() string { return "orders" }

// Quantity is a line item count that decodes leniently: JSON null,
// absent values, and non-numeric junk all become 0 rather than
// rejecting the order. Numeric strings are accepted.
type Quantity int64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*q = 0
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		// Strings like "3" still count; anything else is zero.
		var str string
		if json.Unmarshal(data, &str) != nil {
			*q = 0
			return nil
		}
		num = json.Number(strings.TrimSpace(str))
	}

	if n, err := num.Int64(); err == nil {
		*q = Quantity(n)
		return nil
	}
	if f, err := num.Float64(); err == nil {
		*q = Quantity(int64(f))
		return nil
	}

	*q = 0
	return nil
}

// LineItem is one product/quantity pair inside an order. The POS
// frontend sends snapshot fields (name, price at the time of sale)
// alongside the reference; any keys this struct does not model are
// preserved verbatim in extras so orders round-trip unchanged.
type LineItem struct {
	ProductID uint     `json:"product_id"`
	Quantity  Quantity `json:"quantity"`

	extras map[string]json.RawMessage
}

// NewLineItem builds a line item without extras; used in tests and
// seeders.
func NewLineItem(productID uint, quantity int64) LineItem {
	return LineItem{ProductID: productID, Quantity: Quantity(quantity)}
}

func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("line item: %w", err)
	}

	li.ProductID = 0
	li.Quantity = 0
	li.extras = nil

	for key, value := range raw {
		switch key {
		case "product_id":
			li.ProductID = lenientUint(value)
		case "quantity":
			_ = li.Quantity.UnmarshalJSON(value)
		default:
			if li.extras == nil {
				li.extras = make(map[string]json.RawMessage)
			}
			li.extras[key] = value
		}
	}

	return nil
}

func (li LineItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(li.extras)+2)
	for key, value := range li.extras {
		out[key] = value
	}

	pid, _ := json.Marshal(li.ProductID)
	qty, _ := json.Marshal(int64(li.Quantity))
	out["product_id"] = pid
	out["quantity"] = qty

	return json.Marshal(out)
}

// Extra returns a caller-supplied field that is not part of the typed
// schema, e.g. the price snapshot the frontend attaches.
func (li LineItem) Extra(key string) (json.RawMessage, bool) {
	value, ok := li.extras[key]
	return value, ok
}

// lenientUint decodes a JSON value that should be an unsigned integer
// but may arrive as a numeric string; anything else is 0.
func lenientUint(data json.RawMessage) uint {
	var n uint
	if json.Unmarshal(data, &n) == nil {
		return n
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		if parsed, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil {
			return uint(parsed)
		}
	}
	return 0
}

// LineItems is the JSON-encoded items column. The record store has no
// native array type across all supported drivers, so the sequence is
// stored as a JSON document.
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("line items: marshal: %w", err)
	}
	return string(data), nil
}

func (l *LineItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("line items: cannot scan %T", src)
	}
}
