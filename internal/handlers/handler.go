package handlers

import (
	"time"

	"condition_monitor/internal/logger"
	"condition_monitor/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger

	wsDefaultInterval time.Duration
	wsMaxInterval     time.Duration
}

// Option customizes a Handler.
type Option func(*Handler)

// WithWSIntervals bounds the push interval of /ws/trend.
func WithWSIntervals(def, max time.Duration) Option {
	return func(h *Handler) {
		if def > 0 {
			h.wsDefaultInterval = def
		}
		if max >= h.wsDefaultInterval {
			h.wsMaxInterval = max
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log discards output.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		services:          services,
		log:               log,
		wsDefaultInterval: defaultInterval,
		wsMaxInterval:     maxInterval,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerDeviceFacingRoutes(router)
	h.registerAPIRoutes(router)

	// trend snapshots over WebSocket, same port
	router.GET("/ws/trend", h.wsTrend)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

// registerDeviceFacingRoutes holds the unauthenticated endpoints: devices post
// with their uuid and the trend is public.
func (h *Handler) registerDeviceFacingRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/trend", h.getTrend)
		api.POST("/condition/:uuid", h.postConditions)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.ownerMiddleware)
	{
		api.GET("/me", h.me)
		h.registerDeviceRoutes(api)
		api.GET("/conditions/:uuid", h.getConditions)
	}
}

func (h *Handler) registerDeviceRoutes(api *gin.RouterGroup) {
	devices := api.Group("/devices")
	{
		devices.GET("", h.listDevices)
		// Body example: {"device_uuid":"0694e4d7-dfce-4aec-b7ca-887ac42cfb8f","name":"chair","category":"sofa"}
		devices.POST("", h.registerDevice)
		devices.GET("/:uuid", h.getDevice)
		devices.GET("/:uuid/graph", h.getGraph)
	}
}
