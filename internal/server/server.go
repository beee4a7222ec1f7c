// Package server provides the HTTP REST API for the university guide.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dovydas-v/uniguide/internal/config"
	"github.com/dovydas-v/uniguide/internal/db"
	"github.com/dovydas-v/uniguide/internal/llm"
	"github.com/dovydas-v/uniguide/internal/provider"
	"github.com/dovydas-v/uniguide/internal/server/middleware"
	"github.com/dovydas-v/uniguide/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	db             *db.DB
	validator      *validator.Validate
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	userService    *UserService
	authHandler    *AuthHandler
	llmClient      llm.Client
	filterProvider *provider.FilterProvider
	aiProvider     *provider.AIProvider
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:             database,
		validator:      validator.New(),
		filterProvider: provider.NewFilterProvider(database),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// The AI provider is optional; without an API key recommendations run
	// through the deterministic filter.
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.APIKey, llm.ModelFromEnv())
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.aiProvider = provider.NewAIProvider(client, database)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	authenticated := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", authenticated(s.handleUpdatePassword))

	// Recommendations
	mux.HandleFunc("POST /recommendations", s.handleRecommend)
	mux.HandleFunc("POST /recommendations/rank", s.handleRankResults)

	// Universities and faculties
	mux.HandleFunc("GET /universities", s.handleListUniversities)
	mux.HandleFunc("GET /universities/{id}", s.handleGetUniversity)
	mux.Handle("POST /universities", authenticated(s.handleCreateUniversity))
	mux.Handle("PUT /universities/{id}", authenticated(s.handleUpdateUniversity))
	mux.Handle("DELETE /universities/{id}", authenticated(s.handleDeleteUniversity))
	mux.HandleFunc("GET /universities/{id}/faculties", s.handleListFaculties)
	mux.Handle("POST /universities/{id}/faculties", authenticated(s.handleCreateFaculty))
	mux.HandleFunc("GET /faculties/{id}", s.handleGetFaculty)
	mux.Handle("DELETE /faculties/{id}", authenticated(s.handleDeleteFaculty))

	// Programs and lecturers
	mux.HandleFunc("GET /programs", s.handleListPrograms)
	mux.HandleFunc("GET /programs/{id}", s.handleGetProgram)
	mux.Handle("POST /programs", authenticated(s.handleCreateProgram))
	mux.Handle("PUT /programs/{id}", authenticated(s.handleUpdateProgram))
	mux.Handle("DELETE /programs/{id}", authenticated(s.handleDeleteProgram))
	mux.HandleFunc("GET /faculties/{id}/lecturers", s.handleListLecturers)
	mux.Handle("POST /faculties/{id}/lecturers", authenticated(s.handleCreateLecturer))
	mux.HandleFunc("GET /lecturers/{id}", s.handleGetLecturer)
	mux.Handle("DELETE /lecturers/{id}", authenticated(s.handleDeleteLecturer))

	// Reviews over universities, programs and lecturers
	mux.HandleFunc("GET /{target}/{id}/reviews", s.handleListReviews)
	mux.Handle("POST /{target}/{id}/reviews", authenticated(s.handleCreateReview))
	mux.Handle("DELETE /reviews/{id}", authenticated(s.handleDeleteReview))

	// Forum
	mux.HandleFunc("GET /threads", s.handleListThreads)
	mux.HandleFunc("GET /threads/{id}", s.handleGetThread)
	mux.Handle("POST /threads", authenticated(s.handleCreateThread))
	mux.Handle("DELETE /threads/{id}", authenticated(s.handleDeleteThread))
	mux.Handle("POST /threads/{id}/comments", authenticated(s.handleCreateComment))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // AI recommendations can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// handleUpdatePassword resolves the authenticated user before delegating to
// the auth handler.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePassword(w, r, userID)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored because it is client-controlled unless set by a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
