package handlers

import (
	"home_patterns/internal/logger"
	"home_patterns/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the read-only status API to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	stream   StreamOptions
}

// Option customizes a Handler.
type Option func(*Handler)

// WithStream overrides the /ws interval bounds. Zero fields keep the defaults.
func WithStream(o StreamOptions) Option {
	return func(h *Handler) {
		if o.DefaultInterval > 0 {
			h.stream.DefaultInterval = o.DefaultInterval
		}
		if o.MaxInterval > 0 {
			h.stream.MaxInterval = o.MaxInterval
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, stream: defaultStream}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Every route is a GET; the remote is driven only from the CLI.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLog, readOnly)

	// API docs come from the registered swag spec (package docs).
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// Device snapshot stream on the same port.
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/devices", h.getDevices)
		api.GET("/remote", h.getRemote)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
