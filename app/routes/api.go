// Package routes wires the HTTP surface onto the controllers.
package routes

import (
	"gorm.io/gorm"

	"github.com/moyashi0060/kittchen-POS-app/app/controllers"
	"github.com/moyashi0060/kittchen-POS-app/app/repositories"
	"github.com/moyashi0060/kittchen-POS-app/app/services"
	"github.com/moyashi0060/kittchen-POS-app/config"
	"github.com/moyashi0060/kittchen-POS-app/pkg/metrics"
	"github.com/moyashi0060/kittchen-POS-app/pkg/router"
	"github.com/moyashi0060/kittchen-POS-app/pkg/storage"
)

// RegisterAPI builds the repository/service/controller graph from the
// injected store handles and mounts every route.
func RegisterAPI(r *router.Router, db *gorm.DB, disk storage.Disk) {
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	catalog := services.NewCatalogService(productRepo)
	orders := services.NewOrderService(orderRepo)
	sales := services.NewSalesService(orderRepo, productRepo)
	uploads := services.NewUploadService(disk, config.UploadBucket())

	productController := controllers.NewProductController(catalog)
	orderController := controllers.NewOrderController(orders)
	salesController := controllers.NewSalesController(sales)
	uploadController := controllers.NewUploadController(uploads)
	healthController := controllers.NewHealthController()

	api := r.Group("/api")

	api.Get("/orders", "orders.list", orderController.List)
	api.Post("/orders", "orders.create", orderController.Create)
	api.Put("/orders/{id}", "orders.update", orderController.Update)
	api.Delete("/orders/{id}", "orders.delete", orderController.Delete)

	api.Get("/products", "products.list", productController.List)
	api.Post("/products", "products.create", productController.Create)
	api.Put("/products/{id}", "products.update", productController.Update)
	api.Delete("/products/{id}", "products.delete", productController.Delete)

	api.Post("/upload", "upload", uploadController.Store)
	api.Get("/health", "health", healthController.Check)
	api.Get("/sales/today", "sales.today", salesController.Today)

	r.Get("/metrics", "metrics", metrics.Handler())
}
