package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CraftLedger_Go/internal/cache"
	"github.com/osse101/CraftLedger_Go/internal/crafting"
	"github.com/osse101/CraftLedger_Go/internal/database"
	"github.com/osse101/CraftLedger_Go/internal/handler"
	"github.com/osse101/CraftLedger_Go/internal/ledger"
	"github.com/osse101/CraftLedger_Go/internal/logger"
	"github.com/osse101/CraftLedger_Go/internal/metrics"
	"github.com/osse101/CraftLedger_Go/internal/recipe"
	"github.com/osse101/CraftLedger_Go/internal/rpc"
	"github.com/osse101/CraftLedger_Go/internal/sse"
)

// Config holds the transport settings of the server
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	AllowedOrigins []string
	// RateLimit is requests per client per DetectorWindow. 0 disables it.
	RateLimit int
}

// Services bundles everything the routes dispatch to
type Services struct {
	DBPool   database.Pool
	Ledger   ledger.Service
	Recipes  recipe.Service
	Crafting crafting.Service
	Cache    *cache.QueryCache
	SSEHub   *sse.Hub
}

// Server wraps the HTTP server and its router
type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(cfg.RateLimit)

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: CORSAllowedMethods,
		AllowedHeaders: CORSAllowedHeaders,
		MaxAge:         CORSMaxAge,
	}))
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	dispatcher := rpc.NewDispatcher(rpc.Services{
		Ledger:   svc.Ledger,
		Recipes:  svc.Recipes,
		Crafting: svc.Crafting,
		Version:  func() any { return handler.CurrentVersion() },
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svc.Ledger))
			r.Post("/", handler.HandleSaveItem(svc.Ledger))
			r.Put("/{id}", handler.HandleUpdateItem(svc.Ledger))
			r.Delete("/{id}", handler.HandleDeleteItem(svc.Ledger))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleListInventory(svc.Ledger))
			r.Put("/", handler.HandleSetQuantity(svc.Ledger))
			r.Get("/value", handler.HandleInventoryValue(svc.Ledger))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(svc.Recipes))
			r.Post("/", handler.HandleSaveRecipe(svc.Recipes))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGetRecipe(svc.Recipes))
				r.Put("/", handler.HandleUpdateRecipe(svc.Recipes))
				r.Delete("/", handler.HandleDeleteRecipe(svc.Recipes))
				r.Get("/check", handler.HandleCheckCraft(svc.Crafting))
				r.Post("/craft", handler.HandleCraft(svc.Crafting))
			})
		})

		r.Post("/rpc", dispatcher.ServeHTTP)

		if svc.SSEHub != nil {
			r.Get("/events", sse.Handler(svc.SSEHub))
		}

		if svc.Cache != nil {
			adminCacheHandler := handler.NewAdminCacheHandler(svc.Cache)
			r.Route("/admin/cache", func(r chi.Router) {
				r.Get("/stats", adminCacheHandler.HandleGetCacheStats)
				r.Delete("/", adminCacheHandler.HandleClearCache)
			})
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
