package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/idosos/backend/internal/api/docs"
	"github.com/idosos/backend/internal/api/handler"
	"github.com/idosos/backend/internal/api/middleware"
	"github.com/idosos/backend/internal/core/service"
	"github.com/idosos/backend/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
	logger logrus.FieldLogger
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	logger logrus.FieldLogger,
	gatherer prometheus.Gatherer,
	db handler.Pinger,
	elderService *service.ElderService,
	addressService *service.AddressService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ErrorHandlerMiddleware(logger))
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(db, cfg.DBPath)
	elderHandler := handler.NewElderHandler(elderService)
	addressHandler := handler.NewAddressHandler(addressService)

	// Service information
	router.GET("/", systemHandler.Home)
	router.GET("/teste", systemHandler.Probe)
	router.GET("/health", systemHandler.Health)
	router.GET("/caminho_banco", systemHandler.StoragePath)

	// Elders
	elders := router.Group("/idosos")
	{
		elders.POST("", elderHandler.CreateElder)
		elders.GET("", elderHandler.ListElders)
		elders.GET("/:id", elderHandler.GetElder)
		elders.DELETE("/:id", elderHandler.DeleteElder)
	}

	// Postal code lookup
	router.GET("/cep/:code", addressHandler.LookupAddress)

	// Operations
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)

	return &Server{
		router: router,
		config: cfg,
		logger: logger,
		srv: &http.Server{
			Addr:           addr,
			Handler:        router,
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := s.srv.Addr

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		s.logger.WithField("addr", addr).Info("Starting HTTPS server")
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	s.logger.WithField("addr", addr).Info("Starting HTTP server")
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
