package apiHttp

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vibe-gaming/registration/docs"
	"github.com/vibe-gaming/registration/pkg/limiter"
	"github.com/vibe-gaming/registration/pkg/logger"
	"github.com/vibe-gaming/registration/pkg/validator"

	internalV1 "github.com/vibe-gaming/registration/internal/api/http/internal/v1"
	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandlers(
	services *service.Services,
	cfg *config.Config,
) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
	}
}

func (h *Handler) Init() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		corsMiddleware(h.config.HttpServer.CORSOrigins),
		limiter.Limit(h.config.Limiter.RPS, h.config.Limiter.Burst, h.config.Limiter.TTL),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if h.config.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services, h.config)
	internalHandlersV1.Init(router)
}
