// Package api provides the HTTP API server implementation.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/creator-tips/internal/auth"
	"github.com/creator-tips/internal/frame"
	"github.com/creator-tips/internal/logging"
	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/service"
	"github.com/creator-tips/internal/types"
)

// Service interfaces for dependency injection and testing

// TipServiceInterface defines the interface for tip operations.
type TipServiceInterface interface {
	SubmitTip(ctx context.Context, input *service.SubmitTipInput) (string, error)
	ListTips(ctx context.Context, tipper, creator string, limit int) ([]*models.Tip, error)
}

// CreatorServiceInterface defines the interface for creator operations.
type CreatorServiceInterface interface {
	GetByHandle(ctx context.Context, handle string) (*models.Creator, error)
	Top(ctx context.Context, limit int) ([]*models.Creator, error)
	Dashboard(ctx context.Context, address string) (*models.DashboardStats, error)
	SaveProfile(ctx context.Context, creator *models.Creator) error
}

// NotificationServiceInterface defines the interface for notification
// operations.
type NotificationServiceInterface interface {
	Send(ctx context.Context, recipient string, eventType types.NotificationType, data json.RawMessage) (string, error)
	List(ctx context.Context, address string, limit int) ([]*models.Notification, int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, address string) error
}

// UserStoreInterface defines the interface for user profile persistence.
type UserStoreInterface interface {
	Upsert(ctx context.Context, profile *models.UserProfile) error
	GetByAddress(ctx context.Context, address string) (*models.UserProfile, error)
}

// Server represents the HTTP API server.
type Server struct {
	router        *mux.Router
	httpServer    *http.Server
	tips          TipServiceInterface
	creators      CreatorServiceInterface
	notifications NotificationServiceInterface
	users         UserStoreInterface
	verifier      *auth.Verifier
	frames        *frame.Generator
	log           *logging.Logger
	config        *ServerConfig
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	RateLimitRPS    int
	RateLimitBurst  int
}

// NewServer creates a new API server instance.
func NewServer(
	config *ServerConfig,
	tips TipServiceInterface,
	creators CreatorServiceInterface,
	notifications NotificationServiceInterface,
	users UserStoreInterface,
	verifier *auth.Verifier,
	frames *frame.Generator,
	log *logging.Logger,
) *Server {
	s := &Server{
		router:        mux.NewRouter(),
		tips:          tips,
		creators:      creators,
		notifications: notifications,
		users:         users,
		verifier:      verifier,
		frames:        frames,
		log:           log,
		config:        config,
	}

	s.setupRouter()

	return s
}

// setupRouter configures the router with middleware and routes.
func (s *Server) setupRouter() {
	rateLimiter := NewRateLimiter(s.config.RateLimitRPS, s.config.RateLimitBurst)

	// Middleware order matters: logging wraps everything, rate limiting
	// runs after CORS so preflights are never throttled.
	s.router.Use(LoggingMiddleware(s.log))
	s.router.Use(RecoveryMiddleware(s.log))
	s.router.Use(CORSMiddleware)
	s.router.Use(RateLimitMiddleware(rateLimiter))
	s.router.Use(CompressionMiddleware)

	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", s.config.Host, s.config.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Farcaster manifest and frame metadata
	s.router.HandleFunc("/.well-known/farcaster.json", s.handleManifest).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()

	// Tip endpoints
	api.HandleFunc("/tips", s.handleCreateTip).Methods("POST")
	api.HandleFunc("/tips", s.handleGetTips).Methods("GET")

	// Creator endpoints; /top must register before the handle pattern
	api.HandleFunc("/creators/top", s.handleTopCreators).Methods("GET")
	api.HandleFunc("/creators/{handle}", s.handleGetCreator).Methods("GET")

	// Dashboard endpoint
	api.HandleFunc("/dashboard", s.handleDashboard).Methods("GET")

	// Notification endpoints
	api.HandleFunc("/notifications", s.handleGetNotifications).Methods("GET")
	api.HandleFunc("/notifications/send", s.handleSendNotification).Methods("POST")
	api.HandleFunc("/notifications/mark-all-read", s.handleMarkAllRead).Methods("POST")
	api.HandleFunc("/notifications/{id}/read", s.handleMarkRead).Methods("POST")

	// User profile endpoints
	api.HandleFunc("/users", s.handleSaveUser).Methods("POST")
	api.HandleFunc("/users", s.handleGetUser).Methods("GET")

	// Frame metadata endpoint
	api.HandleFunc("/frame", s.handleFrame).Methods("GET")
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "creator-tips",
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.WithField("addr", s.httpServer.Addr).Info("Starting API server")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down API server")
	return s.httpServer.Shutdown(ctx)
}
