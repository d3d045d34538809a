package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

func (h *Handler) initHealthRoutes(api gin.IRouter) {
	api.GET("/health", h.health)
}

type healthResponse struct {
	Status      string            `json:"status"`
	Environment string            `json:"environment"`
	Checks      map[string]string `json:"checks,omitempty"`
} // @name HealthResponse

// @Summary Health
// @Tags Health
// @Description Liveness and dependency status
// @ModuleID health
// @Produce  json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	report := h.services.Health.Check(c.Request.Context())

	res := healthResponse{
		Status:      statusHealthy,
		Environment: h.config.Env,
		Checks:      report.Checks,
	}
	if !report.Healthy {
		res.Status = statusUnhealthy
		c.JSON(http.StatusServiceUnavailable, res)
		return
	}

	c.JSON(http.StatusOK, res)
}
