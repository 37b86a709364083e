// Package controllers maps HTTP requests onto the services. Handlers
// decode input, call exactly one service method, and write the result;
// all status-code decisions live in pkg/apperr and pkg/response.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moyashi0060/kittchen-POS-app/app/services"
	"github.com/moyashi0060/kittchen-POS-app/pkg/bind"
	"github.com/moyashi0060/kittchen-POS-app/pkg/logger"
	"github.com/moyashi0060/kittchen-POS-app/pkg/response"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// List handles GET /api/products.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.List()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products", "error", err)
		response.FromError(w, err)
		return
	}
	response.JSON(w, products)
}

// Create handles POST /api/products.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateProductInput
	if err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.catalog.Create(input)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.Created(w, product)
}

// Update handles PUT /api/products/{id}.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, "product not found")
		return
	}

	var fields map[string]any
	if err := bind.JSON(r, &fields); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := c.catalog.Update(id, fields)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.JSON(w, product)
}

// Delete handles DELETE /api/products/{id}. Unknown and malformed ids
// both report success: the contract is "delete always succeeds".
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	if id, ok := pathID(r); ok {
		if err := c.catalog.Delete(id); err != nil {
			response.FromError(w, err)
			return
		}
	}
	response.NoContent(w)
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
