package controllers

import (
	"net/http"
	"time"

	"github.com/moyashi0060/kittchen-POS-app/app/services"
	"github.com/moyashi0060/kittchen-POS-app/pkg/logger"
	"github.com/moyashi0060/kittchen-POS-app/pkg/response"
)

type SalesController struct {
	sales *services.SalesService
	now   func() time.Time
}

func NewSalesController(sales *services.SalesService) *SalesController {
	return &SalesController{sales: sales, now: time.Now}
}

// Today handles GET /api/sales/today. The report covers the current
// UTC calendar day; an optional date=YYYY-MM-DD query param selects a
// different day.
func (c *SalesController) Today(w http.ResponseWriter, r *http.Request) {
	date := c.now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	report, err := c.sales.ReportFor(date)
	if err != nil {
		logger.WithCtx(r.Context()).Error("build sales report", "error", err)
		response.FromError(w, err)
		return
	}
	response.JSON(w, report)
}
