// Package web serves the trending dashboard: one HTML page gated behind a
// login form, plus health and metrics endpoints.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yt-trending/internal/config"
	"github.com/yt-trending/internal/session"
	"github.com/yt-trending/internal/trending"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const sessionCookie = "trending_session"

// refreshDelay paces the manual refresh acknowledgment before the page
// re-renders. Cosmetic only.
const refreshDelay = 200 * time.Millisecond

// Server represents the dashboard server.
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	trending *trending.Service
	sessions *session.Manager
	logger   *slog.Logger
	delay    time.Duration
}

// NewServer creates a new dashboard server.
func NewServer(cfg *config.Config, svc *trending.Service, sessions *session.Manager, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	server := &Server{
		router:   router,
		cfg:      cfg,
		trending: svc,
		sessions: sessions,
		logger:   logger,
		delay:    refreshDelay,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes for the server.
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/", s.showDashboard)
	s.router.POST("/login", s.handleLogin)
	s.router.POST("/logout", s.handleLogout)
	s.router.POST("/controls", s.handleControls)
	s.router.POST("/refresh", s.handleRefresh)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server on the specified port.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", c.ClientIP()),
		)
	}
}
