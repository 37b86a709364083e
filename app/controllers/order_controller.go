package controllers

import (
	"net/http"
	"strconv"

	"github.com/moyashi0060/kittchen-POS-app/app/services"
	"github.com/moyashi0060/kittchen-POS-app/pkg/bind"
	"github.com/moyashi0060/kittchen-POS-app/pkg/logger"
	"github.com/moyashi0060/kittchen-POS-app/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// List handles GET /api/orders with optional sort and limit params.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	sort := r.URL.Query().Get("sort")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	orders, err := c.orders.List(sort, limit)
	if err != nil {
		logger.WithCtx(r.Context()).Error("list orders", "error", err)
		response.FromError(w, err)
		return
	}
	response.JSON(w, orders)
}

// Create handles POST /api/orders.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateOrderInput
	if err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := c.orders.Create(input)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, order)
}

// Update handles PUT /api/orders/{id}.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, "order not found")
		return
	}

	var fields map[string]any
	if err := bind.JSON(r, &fields); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := c.orders.Update(id, fields)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, order)
}

// Delete handles DELETE /api/orders/{id}.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		if err := c.orders.Delete(id); err != nil {
			response.FromError(w, err)
			return
		}
	}
	response.NoContent(w)
}
