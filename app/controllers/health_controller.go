package controllers

import (
	"net/http"
	"time"

	"github.com/moyashi0060/kittchen-POS-app/pkg/response"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Check handles GET /api/health.
func (c *HealthController) Check(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
