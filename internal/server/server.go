package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdutta9/mealscan/internal/config"
	"github.com/sdutta9/mealscan/internal/nutrition"
)

// Analyzer runs a meal-photo analysis. Satisfied by *analyze.Engine.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, lang nutrition.Lang) (*nutrition.AnalysisResult, error)
}

// Server serves the HTTP API.
type Server struct {
	engine Analyzer
	cfg    config.ServerConfig
	log    *zap.Logger
}

// New creates a Server. A nil logger disables logging.
func New(engine Analyzer, cfg config.ServerConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{engine: engine, cfg: cfg, log: log}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(s.log))

	corsCfg := cors.DefaultConfig()
	if len(s.cfg.AllowedOrigins) == 1 && s.cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Content-Type", "X-Requested-With"}
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	{
		api.POST("/analyze", s.handleAnalyze)
		api.GET("/healthz", s.handleHealthz)
		api.GET("/profile/tdee", s.handleTDEE)
	}

	return router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
