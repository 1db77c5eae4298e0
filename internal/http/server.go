package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"clinica/internal/cache"
	"clinica/internal/middleware/ratelimit"
	"clinica/internal/middleware/trace"
	"clinica/internal/services"
)

type Server struct {
	http.Server

	transactions  *services.TransactionService
	professionals *services.ProfessionalService
	rooms         *services.RoomService

	rateLimiter *ratelimit.Limiter
	tracer      *trace.Middleware

	// LRU caches for the read-heavy endpoints; flushed on every mutation so
	// a snapshot from before a write is never served after it.
	summaryCache      *cache.LRUCache[summaryView]
	dashboardCache    *cache.LRUCache[dashboardView]
	appointmentsCache *cache.LRUCache[[]services.SlotView]

	cacheManager *cache.Manager
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, tx *services.TransactionService, pr *services.ProfessionalService, rm *services.RoomService) *Server {
	mux := http.NewServeMux()

	s := &Server{
		transactions:  tx,
		professionals: pr,
		rooms:         rm,
		rateLimiter:   ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		tracer:        trace.NewMiddleware(clientIP),

		summaryCache:      cache.NewLRUCache[summaryView](50, 5*time.Minute),
		dashboardCache:    cache.NewLRUCache[dashboardView](10, time.Minute),
		appointmentsCache: cache.NewLRUCache[[]services.SlotView](10, time.Minute),

		cacheManager: cache.NewManager(),
	}
	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.tracer.Middleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.cacheManager.Register(s.summaryCache)
	s.cacheManager.Register(s.dashboardCache)
	s.cacheManager.Register(s.appointmentsCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /transactions", s.guard(s.handleCreateTransaction))
	mux.HandleFunc("GET /transactions", s.guard(s.handleListTransactions))
	mux.HandleFunc("GET /transactions/summary", s.guard(s.handleTransactionSummary))
	mux.HandleFunc("PUT /transactions/{id}", s.guard(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}", s.guard(s.handleDeleteTransaction))

	mux.HandleFunc("POST /professionals", s.guard(s.handleCreateProfessional))
	mux.HandleFunc("GET /professionals", s.guard(s.handleListProfessionals))
	mux.HandleFunc("GET /professionals/{id}", s.guard(s.handleGetProfessional))
	mux.HandleFunc("PUT /professionals/{id}", s.guard(s.handleUpdateProfessional))
	mux.HandleFunc("PUT /professionals/{id}/metrics", s.guard(s.handleUpdateProfessionalMetrics))
	mux.HandleFunc("DELETE /professionals/{id}", s.guard(s.handleDeleteProfessional))

	mux.HandleFunc("POST /rooms", s.guard(s.handleCreateRoom))
	mux.HandleFunc("GET /rooms", s.guard(s.handleListRooms))
	mux.HandleFunc("PUT /rooms/{id}", s.guard(s.handleUpdateRoom))
	mux.HandleFunc("DELETE /rooms/{id}", s.guard(s.handleDeleteRoom))

	mux.HandleFunc("GET /appointments/today", s.guard(s.handleTodayAppointments))
	mux.HandleFunc("GET /appointments/week", s.guard(s.handleWeekAppointments))

	mux.HandleFunc("GET /dashboard", s.guard(s.handleDashboard))

	return s
}

// guard applies security headers and rate limiting ahead of the handler.
// Rate limiting covers mutating methods only; read endpoints stay cheap
// because of the response caches.
func (s *Server) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		if r.Method != http.MethodGet && !s.rateLimiter.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		next(w, r)
	}
}

// invalidateReads drops every cached read snapshot after a mutation.
func (s *Server) invalidateReads() {
	s.summaryCache.Flush()
	s.dashboardCache.Flush()
	s.appointmentsCache.Flush()
}

// Shutdown stops the cleanup routines and the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	// State is in-memory, so readiness equals liveness.
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
