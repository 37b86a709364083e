package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moyashi0060/kittchen-POS-app/app/models"
	"github.com/moyashi0060/kittchen-POS-app/pkg/apperr"
	"github.com/moyashi0060/kittchen-POS-app/pkg/collection"
	"github.com/moyashi0060/kittchen-POS-app/pkg/metrics"
)

// CompletedOrderStore is the order surface the aggregator reads.
type CompletedOrderStore interface {
	CompletedBetween(start, end time.Time) ([]models.Order, error)
}

// ProductLister is the catalog surface the aggregator reads.
type ProductLister interface {
	All() ([]models.Product, error)
}

// SalesService computes the daily sales report.
//
// The report is a client-side join of two independently-mutable
// collections: the store has no server-side join, so the product
// lookup is rebuilt in memory on every call and discarded afterwards —
// freshness over performance. The two fetches run outside any
// transaction, so the report is a best-effort snapshot.
type SalesService struct {
	orders   CompletedOrderStore
	products ProductLister
}

func NewSalesService(orders CompletedOrderStore, products ProductLister) *SalesService {
	return &SalesService{orders: orders, products: products}
}

// ReportFor aggregates completed orders for the UTC calendar day of
// date.
//
// Referential inconsistency never fails the report: a line item whose
// product was deleted, or whose product has no price, contributes zero
// to total_sales while its quantity still counts toward total_items.
// If either underlying fetch fails the whole report fails — a
// half-built report would misstate totals.
func (s *SalesService) ReportFor(date time.Time) (models.SalesReport, error) {
	day := date.UTC()
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)

	orders, err := s.orders.CompletedBetween(start, end)
	if err != nil {
		return models.SalesReport{}, apperr.Store(err, "fetch orders")
	}

	products, err := s.products.All()
	if err != nil {
		return models.SalesReport{}, apperr.Store(err, "fetch products")
	}

	lookup := collection.KeyBy(products, func(p models.Product) uint { return p.ID })

	totalSales := decimal.Zero
	var totalItems int64

	for _, order := range orders {
		for _, item := range order.Items {
			quantity := int64(item.Quantity)

			price := decimal.Zero
			if product, ok := lookup[item.ProductID]; ok {
				price = product.PriceOrZero()
			}

			totalSales = totalSales.Add(price.Mul(decimal.NewFromInt(quantity)))
			totalItems += quantity
		}
	}

	if orders == nil {
		orders = []models.Order{}
	}

	metrics.SalesReportsBuilt.Inc()

	return models.SalesReport{
		Date:       start.Format("2006-01-02"),
		TotalSales: totalSales,
		TotalItems: totalItems,
		OrderCount: len(orders),
		Orders:     orders,
	}, nil
}
