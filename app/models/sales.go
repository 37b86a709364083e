package models

import "github.com/shopspring/decimal"

// SalesReport is the computed daily aggregate. It is never persisted;
// it is rebuilt from completed orders and current product prices on
// every request.
type SalesReport struct {
	Date       string          `json:"date"` // UTC calendar day, YYYY-MM-DD
	TotalSales decimal.Decimal `json:"total_sales"`
	TotalItems int64           `json:"total_items"`
	OrderCount int             `json:"order_count"`
	Orders     []Order         `json:"orders"`
}
