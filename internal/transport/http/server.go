package httptransport

import (
	"context"
	"net/http"
	"time"
)

// ServerConfig contains tunables for the HTTP server.
type ServerConfig struct {
	Address        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration // overall per-request deadline; 0 disables it
}

// NewServer creates *http.Server with the provided handler, bounding each
// request with the configured overall deadline.
func NewServer(cfg ServerConfig, handler http.Handler) *http.Server {
	if cfg.RequestTimeout > 0 {
		handler = withRequestDeadline(cfg.RequestTimeout, handler)
	}
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// withRequestDeadline caps how long a handler may wait on its collaborators.
// Expired contexts surface from the store or identity calls and are mapped to
// 503 by the handlers instead of hanging the request.
func withRequestDeadline(timeout time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
