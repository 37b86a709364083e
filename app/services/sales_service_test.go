package services

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moyashi0060/kittchen-POS-app/app/models"
	"github.com/moyashi0060/kittchen-POS-app/pkg/apperr"
)

// fakeCompletedOrders returns a fixed order slice and records the
// requested window.
type fakeCompletedOrders struct {
	orders   []models.Order
	failWith error

	start, end time.Time
}

func (f *fakeCompletedOrders) CompletedBetween(start, end time.Time) ([]models.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.start, f.end = start, end
	return f.orders, nil
}

type fakeProductLister struct {
	products []models.Product
	failWith error
}

func (f *fakeProductLister) All() ([]models.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.products, nil
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestReportForAggregatesCompletedOrders(t *testing.T) {
	orders := &fakeCompletedOrders{orders: []models.Order{
		{
			ID:     1,
			Status: models.StatusCompleted,
			Items:  models.LineItems{models.NewLineItem(10, 2)},
		},
	}}
	products := &fakeProductLister{products: []models.Product{
		{ID: 10, Name: "Curry Rice", Category: "mains", Price: decimalPtr(500)},
	}}

	svc := NewSalesService(orders, products)
	report, err := svc.ReportFor(time.Date(2026, 8, 29, 13, 45, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-29", report.Date)
	assert.True(t, report.TotalSales.Equal(decimal.NewFromInt(1000)), "got %s", report.TotalSales)
	assert.Equal(t, int64(2), report.TotalItems)
	assert.Equal(t, 1, report.OrderCount)
	require.Len(t, report.Orders, 1)
	assert.Equal(t, uint(1), report.Orders[0].ID)
}

func TestReportForUsesUTCDayBounds(t *testing.T) {
	orders := &fakeCompletedOrders{}
	svc := NewSalesService(orders, &fakeProductLister{})

	// 23:30 JST on the 29th is 14:30 UTC the same day; the window must
	// cover the UTC calendar day, not the local one.
	at := time.Date(2026, 8, 29, 23, 30, 0, 0, time.FixedZone("JST", 9*3600))
	_, err := svc.ReportFor(at)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), orders.start)
	assert.Equal(t, time.Date(2026, 8, 29, 23, 59, 59, 999999999, time.UTC), orders.end)
}

func TestReportForEmptyDay(t *testing.T) {
	svc := NewSalesService(&fakeCompletedOrders{}, &fakeProductLister{})

	report, err := svc.ReportFor(time.Now())
	require.NoError(t, err)

	assert.True(t, report.TotalSales.IsZero())
	assert.Zero(t, report.TotalItems)
	assert.Zero(t, report.OrderCount)
	assert.Equal(t, []models.Order{}, report.Orders, "orders serialize as [], not null")
}

func TestReportForMissingProduct(t *testing.T) {
	orders := &fakeCompletedOrders{orders: []models.Order{
		{
			Status: models.StatusCompleted,
			Items: models.LineItems{
				models.NewLineItem(10, 2), // known, 500 each
				models.NewLineItem(99, 3), // deleted from the catalog
			},
		},
	}}
	products := &fakeProductLister{products: []models.Product{
		{ID: 10, Name: "Curry Rice", Category: "mains", Price: decimalPtr(500)},
	}}

	report, err := NewSalesService(orders, products).ReportFor(time.Now())
	require.NoError(t, err)

	assert.True(t, report.TotalSales.Equal(decimal.NewFromInt(1000)), "missing product contributes zero revenue")
	assert.Equal(t, int64(5), report.TotalItems, "missing product still counts toward item totals")
	assert.Equal(t, 1, report.OrderCount)
}

func TestReportForUnpricedProduct(t *testing.T) {
	orders := &fakeCompletedOrders{orders: []models.Order{
		{
			Status: models.StatusCompleted,
			Items:  models.LineItems{models.NewLineItem(7, 4)},
		},
	}}
	products := &fakeProductLister{products: []models.Product{
		{ID: 7, Name: "Tasting Plate", Category: "mains"}, // no price set
	}}

	report, err := NewSalesService(orders, products).ReportFor(time.Now())
	require.NoError(t, err)

	assert.True(t, report.TotalSales.IsZero())
	assert.Equal(t, int64(4), report.TotalItems)
}

func TestReportForOrderFetchFailure(t *testing.T) {
	orders := &fakeCompletedOrders{failWith: errors.New("connection reset")}
	svc := NewSalesService(orders, &fakeProductLister{})

	_, err := svc.ReportFor(time.Now())
	require.Error(t, err)
	assert.Equal(t, apperr.StoreUnavailable, apperr.KindOf(err))
}

func TestReportForProductFetchFailure(t *testing.T) {
	products := &fakeProductLister{failWith: errors.New("connection reset")}
	svc := NewSalesService(&fakeCompletedOrders{}, products)

	_, err := svc.ReportFor(time.Now())
	require.Error(t, err)
	assert.Equal(t, apperr.StoreUnavailable, apperr.KindOf(err), "no partial report on a failed join")
}
