package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yt-insights/ytca/internal/analytics"
	"github.com/yt-insights/ytca/internal/config"
	"github.com/yt-insights/ytca/internal/logging"
	"github.com/yt-insights/ytca/internal/models"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// Analyzer produces a fresh report for a channel ID
type Analyzer interface {
	Analyze(ctx context.Context, channelID string, maxResults int) (*models.AnalyticsReport, error)
}

// ChannelResolver turns a channel URL into a channel ID
type ChannelResolver interface {
	ExtractChannelIDFromURL(ctx context.Context, channelURL string) (string, error)
}

// RunLog stores analytics run metadata. *models.Database implements it.
type RunLog interface {
	RecordRun(run *models.AnalyticsRun) error
	RecentRuns(channelID string, limit int) ([]models.AnalyticsRun, error)
}

// Server represents the API server
type Server struct {
	router            *gin.Engine
	analyzer          Analyzer
	resolver          ChannelResolver
	runs              RunLog
	defaultMaxResults int
	timeout           time.Duration
	log               zerolog.Logger
}

// NewServer creates a new API server. runs may be nil, which disables the
// run log.
func NewServer(cfg *config.Config, analyzer Analyzer, resolver ChannelResolver, runs RunLog) *Server {
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	server := &Server{
		router:            router,
		analyzer:          analyzer,
		resolver:          resolver,
		runs:              runs,
		defaultMaxResults: analytics.ClampMaxResults(cfg.DefaultMaxResults),
		timeout:           cfg.RequestTimeout,
		log:               logging.WithComponent("api"),
	}

	server.setupRoutes()

	return server
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Pragma"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// cors.New panics when no origin is allowed at all
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Channel endpoints
	s.router.GET("/channel/url", s.getChannelByURL)

	// Analytics endpoints
	s.router.GET("/channel/:id/analytics", s.getChannelAnalytics)
	s.router.GET("/channel/:id/runs", s.getChannelRuns)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// getChannelByURL handles requests to resolve a channel URL to its ID
func (s *Server) getChannelByURL(c *gin.Context) {
	channelURL := c.Query("url")
	if channelURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"details": "url query parameter is required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	channelID, err := s.resolver.ExtractChannelIDFromURL(ctx, channelURL)
	if err != nil {
		s.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channelId": channelID})
}

// getChannelAnalytics handles requests to get channel analytics
func (s *Server) getChannelAnalytics(c *gin.Context) {
	channelID := c.Param("id")

	maxResults := s.defaultMaxResults
	if raw := c.Query("maxResults"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			maxResults = analytics.ClampMaxResults(n)
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	report, err := s.analyzer.Analyze(ctx, channelID, maxResults)
	if err != nil {
		s.recordRun(models.NewFailedRun(channelID, err))
		s.errorResponse(c, err)
		return
	}
	s.recordRun(models.NewSucceededRun(report))

	c.JSON(http.StatusOK, report)
}

// getChannelRuns lists the latest analytics runs for a channel
func (s *Server) getChannelRuns(c *gin.Context) {
	channelID := c.Param("id")

	limit := defaultRunsLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = min(n, maxRunsLimit)
		}
	}

	if s.runs == nil {
		c.JSON(http.StatusOK, []models.AnalyticsRun{})
		return
	}

	runs, err := s.runs.RecentRuns(channelID, limit)
	if err != nil {
		s.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}

// recordRun never fails the request; a broken run log only costs history.
func (s *Server) recordRun(run *models.AnalyticsRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.RecordRun(run); err != nil {
		s.log.Warn().Err(err).Str("channel_id", run.ChannelID).Msg("failed to record analytics run")
	}
}

// errorResponse maps an error to its status code and JSON body
func (s *Server) errorResponse(c *gin.Context, err error) {
	status, message := classifyError(err)
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.FullPath()).Msg(message)
	}
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

func classifyError(err error) (int, string) {
	var upstream *analytics.UpstreamError
	switch {
	case errors.Is(err, ErrUnsupportedURL):
		return http.StatusBadRequest, "unsupported channel URL"
	case errors.Is(err, analytics.ErrChannelNotFound):
		return http.StatusNotFound, "channel not found"
	case analytics.IsNotFound(err):
		return http.StatusNotFound, "channel has no videos to analyze"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "analysis timed out"
	case errors.As(err, &upstream):
		return http.StatusBadGateway, "YouTube API request failed"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	s.log.Info().Str("port", port).Msg("server starting")
	return s.router.Run(":" + port)
}
