package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/OldStager01/breast-cancer-predictor/api/handlers"
	"github.com/OldStager01/breast-cancer-predictor/api/middleware"
	_ "github.com/OldStager01/breast-cancer-predictor/docs"
	"github.com/OldStager01/breast-cancer-predictor/internal/artifacts"
	"github.com/OldStager01/breast-cancer-predictor/internal/inference"
	"github.com/OldStager01/breast-cancer-predictor/internal/metrics"
	"github.com/OldStager01/breast-cancer-predictor/pkg/config"
	"github.com/OldStager01/breast-cancer-predictor/web"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     config.APIConfig
	metricsCfg config.MetricsConfig
	metrics    *metrics.Metrics
	predictor  handlers.Predictor
	startupErr error
	loadedAt   time.Time
}

// NewServer wires the UI and API around the artifact load outcome. When
// startupErr is non-nil the server only renders the blocking error.
func NewServer(cfg *config.Config, arts *artifacts.Artifacts, startupErr error, m *metrics.Metrics) (*Server, error) {
	switch cfg.App.Mode {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	if m == nil {
		m = metrics.New()
	}

	if startupErr == nil && arts == nil {
		startupErr = fmt.Errorf("%w: no artifacts supplied", artifacts.ErrArtifactLoad)
	}

	router := gin.New()
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router:     router,
		config:     cfg.API,
		metricsCfg: cfg.Metrics,
		metrics:    m,
		startupErr: startupErr,
	}
	if startupErr == nil {
		s.predictor = inference.New(arts)
		s.loadedAt = arts.LoadedAt()
	}
	m.SetArtifactsLoaded(startupErr == nil)

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.TraceID())
	s.router.Use(middleware.RequestLogger(s.metrics))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.CORS(middleware.CORSFromConfig(s.config.CORS)))
	s.router.Use(middleware.RequestSizeLimit(s.config.MaxRequestBytes))

	rateLimiter := middleware.NewRateLimiter(s.config.RateLimit, time.Minute)
	s.router.Use(middleware.RateLimit(rateLimiter))
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.startupErr, s.loadedAt)

	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/health/ready", healthHandler.Ready)
	s.router.GET("/health/live", healthHandler.Live)

	s.router.StaticFS("/static", http.FS(web.Static()))

	if s.metricsCfg.Enabled {
		s.router.GET(s.metricsCfg.Path, gin.WrapH(s.metrics.Handler()))
	}
	if s.config.EnableSwagger {
		s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := s.router.Group("/api/v1")
	v1.GET("/features", handlers.ListFeatures)

	if s.startupErr != nil {
		blocked := handlers.NewBlockedHandler(s.startupErr, s.metrics)
		s.router.GET("/", blocked.Page)
		s.router.POST("/predict", blocked.Page)
		v1.POST("/predict", blocked.API)
		return
	}

	predictLimiter := middleware.NewEndpointRateLimiter()
	predictLimiter.AddEndpoint("/predict", s.config.RateLimit/2+1, time.Minute)
	predictLimiter.AddEndpoint("/api/v1/predict", s.config.RateLimit/2+1, time.Minute)

	formHandler := handlers.NewFormHandler(s.predictor, s.metrics)
	predictHandler := handlers.NewPredictHandler(s.predictor, s.metrics)

	s.router.GET("/", formHandler.Show)
	s.router.POST("/predict", predictLimiter.Middleware(), formHandler.Predict)
	v1.POST("/predict", predictLimiter.Middleware(), predictHandler.Predict)
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	idle := s.config.IdleTimeout
	if idle <= 0 {
		idle = 60 * time.Second
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  idle,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// Blocked reports whether the server is refusing predictions.
func (s *Server) Blocked() bool {
	return s.startupErr != nil
}
