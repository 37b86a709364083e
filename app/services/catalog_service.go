// Package services holds the business logic between the HTTP layer and
// the record/blob stores. Services validate eagerly before touching a
// store and translate store failures into the apperr taxonomy; they
// keep no state of their own.
package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/moyashi0060/kittchen-POS-app/app/models"
	"github.com/moyashi0060/kittchen-POS-app/app/repositories"
	"github.com/moyashi0060/kittchen-POS-app/pkg/apperr"
	"github.com/moyashi0060/kittchen-POS-app/pkg/validate"
)

// ProductStore is the record store surface the catalog needs. The
// concrete implementation is repositories.ProductRepository; tests
// substitute fakes.
type ProductStore interface {
	All() ([]models.Product, error)
	FindByID(id uint) (models.Product, error)
	Create(product *models.Product) error
	UpdateFields(id uint, fields map[string]any) (int64, error)
	Delete(id uint) error
}

// CreateProductInput is the accepted shape for product creation.
type CreateProductInput struct {
	Name        string           `json:"name" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    string           `json:"image_url"`
	IsActive    *bool            `json:"is_active"`
	Description string           `json:"description"`
}

// productColumns maps updatable JSON field names to store columns.
// The id is never updatable.
var productColumns = map[string]string{
	"name":        "name",
	"category":    "category",
	"price":       "price",
	"image_url":   "image_url",
	"is_active":   "is_active",
	"description": "description",
}

type CatalogService struct {
	products ProductStore
}

func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// List returns all products in store order.
func (s *CatalogService) List() ([]models.Product, error) {
	products, err := s.products.All()
	if err != nil {
		return nil, apperr.Store(err, "fetch products")
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Create validates and persists a new product, returning the stored
// record including its assigned id.
func (s *CatalogService) Create(input CreateProductInput) (models.Product, error) {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return models.Product{}, apperr.Validationf("%s", firstError(errs, "name", "category"))
	}

	product := models.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsActive:    true,
		Description: input.Description,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.products.Create(&product); err != nil {
		return models.Product{}, apperr.Store(err, "create product")
	}
	return product, nil
}

// Update applies a shallow merge of the given fields. Unknown fields
// are ignored; a miss on the id is NotFound, detected by the refetch
// that follows the merge.
func (s *CatalogService) Update(id uint, fields map[string]any) (models.Product, error) {
	columns := pickColumns(fields, productColumns)
	if len(columns) == 0 {
		// Nothing to change; still report NotFound for absent ids.
		product, err := s.products.FindByID(id)
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Product{}, apperr.NotFoundf("product not found")
		}
		if err != nil {
			return models.Product{}, apperr.Store(err, "fetch product")
		}
		return product, nil
	}

	if _, err := s.products.UpdateFields(id, columns); err != nil {
		return models.Product{}, apperr.Store(err, "update product")
	}

	// The affected-row count cannot distinguish an absent id from a
	// no-op merge (MySQL reports 0 rows when nothing changed), so the
	// follow-up read decides existence.
	product, err := s.products.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Product{}, apperr.NotFoundf("product not found")
	}
	if err != nil {
		return models.Product{}, apperr.Store(err, "fetch product")
	}
	return product, nil
}

// Delete removes a product by id. Absent ids succeed: delete always
// reports success.
func (s *CatalogService) Delete(id uint) error {
	if err := s.products.Delete(id); err != nil {
		return apperr.Store(err, "delete product")
	}
	return nil
}

// pickColumns filters caller fields down to known store columns.
func pickColumns(fields map[string]any, allowed map[string]string) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if column, ok := allowed[key]; ok {
			out[column] = value
		}
	}
	return out
}

// firstError returns the message for the first of the preferred fields
// present in errs, falling back to any entry. Keeps validation
// messages deterministic despite map iteration order.
func firstError(errs map[string]string, preferred ...string) string {
	for _, field := range preferred {
		if msg, ok := errs[field]; ok {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return "invalid input"
}
