package v1

import (
	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Registration API
// @version 1.0
// @description User registration with email verification

// @BasePath /

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(
	services *service.Services,
	config *config.Config,
) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api gin.IRouter) {
	h.initUsersRoutes(api)
	h.initCountriesRoutes(api)
	h.initHealthRoutes(api)
}
