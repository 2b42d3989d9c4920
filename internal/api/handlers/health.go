package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/dto/v1/health"
	"github.com/osa911/portfolio/internal/utils"
)

// HealthHandler serves a static liveness payload; it has no failure modes
type HealthHandler struct {
	response health.HealthResponse
}

func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		response: health.HealthResponse{
			Status:  "ok",
			Service: serviceName,
			Version: version,
		},
	}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleOK(c, h.response)
}
