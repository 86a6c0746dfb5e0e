// Package http exposes the ledger over a JSON API.
package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"mindledger/internal/backend"
	"mindledger/internal/core"
	"mindledger/internal/ledger"
	"mindledger/internal/log"
	"mindledger/internal/middleware/trace"
)

// EventPublisher announces recorded transactions to downstream consumers.
// A nil publisher disables events.
type EventPublisher interface {
	PublishTransactionRecorded(ctx context.Context, transactionID, accountID uuid.UUID) error
}

type Server struct {
	http.Server
	store       backend.Store
	ledger      *ledger.Service
	currencies  core.CurrencyResolver
	events      EventPublisher
	logger      *log.Logger
	rateLimiter *rateLimiter

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, store backend.Store, currencies core.CurrencyResolver, events EventPublisher, logger *log.Logger, ratePerMinute int) *Server {
	mux := http.NewServeMux()

	s := &Server{
		store:       store,
		ledger:      ledger.NewService(store, store),
		currencies:  currencies,
		events:      events,
		logger:      logger.WithComponent(log.ComponentHTTP),
		rateLimiter: newRateLimiter(ratePerMinute),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /accounts", s.wrap(s.handleCreateAccount))
	mux.HandleFunc("GET /accounts", s.wrap(s.handleListAccounts))
	mux.HandleFunc("POST /accounts/{id}/archive", s.wrap(s.handleArchiveAccount))
	mux.HandleFunc("POST /accounts/{id}/transactions", s.wrap(s.handleCreateTransaction))
	mux.HandleFunc("GET /accounts/{id}/transactions", s.wrap(s.handleListTransactions))
	mux.HandleFunc("GET /accounts/{id}/balance", s.wrap(s.handleBalance))
	mux.HandleFunc("GET /net-worth", s.wrap(s.handleNetWorth))
	mux.HandleFunc("POST /goals", s.wrap(s.handleCreateGoal))
	mux.HandleFunc("GET /goals", s.wrap(s.handleListGoals))

	traced := trace.NewMiddleware(clientIP)
	s.Server = http.Server{
		Addr:    addr,
		Handler: traced.Middleware(mux),
	}

	return s
}

// wrap applies security headers and rate limiting to a handler.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")

		if !s.rateLimiter.allow(clientIP(r)) {
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
			return
		}

		next(w, r)
	}
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// clientIP extracts the client address without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Simple in-memory per-IP rate limiter.
type rateLimiter struct {
	mu           sync.Mutex
	perMinute    int
	clients      map[string]*clientInfo
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func newRateLimiter(perMinute int) *rateLimiter {
	rl := &rateLimiter{
		perMinute:   perMinute,
		clients:     make(map[string]*clientInfo),
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[ip]
	if !exists {
		rl.clients[ip] = &clientInfo{lastRequest: now, requests: 1}
		return true
	}

	// Reset the counter after a quiet minute
	if now.Sub(client.lastRequest) > time.Minute {
		client.requests = 1
		client.lastRequest = now
		return true
	}

	client.requests++
	client.lastRequest = now
	return client.requests <= rl.perMinute
}

func (rl *rateLimiter) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries removes client entries older than 10 minutes.
func (rl *rateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.shutdownOnce.Do(func() {
		close(rl.stopCleanup)
	})
}
