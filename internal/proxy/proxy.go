// Package proxy implements the front reverse proxy: it routes API paths
// (/graphql and friends) to the API server and every other path to the web
// backend, so clients talk to a single port.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/proxy/config"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr        string
	apiPrefixes []string
	apiProxy    *httputil.ReverseProxy
	webProxy    *httputil.ReverseProxy
	logger      logging.Logger
}

func NewServer(cfg *config.Config, l logging.Logger) (*Server, error) {
	apiURL, err := url.Parse(cfg.APITarget)
	if err != nil {
		return nil, fmt.Errorf("invalid api target: %w", err)
	}
	webURL, err := url.Parse(cfg.WebTarget)
	if err != nil {
		return nil, fmt.Errorf("invalid web target: %w", err)
	}

	return &Server{
		addr:        cfg.Addr,
		apiPrefixes: cfg.APIPrefixes,
		apiProxy:    httputil.NewSingleHostReverseProxy(apiURL),
		webProxy:    httputil.NewSingleHostReverseProxy(webURL),
		logger:      l.With("module", "proxy"),
	}, nil
}

func (s *Server) isAPIPath(path string) bool {
	for _, prefix := range s.apiPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.isAPIPath(r.URL.Path) {
		s.apiProxy.ServeHTTP(w, r)
		return
	}
	s.webProxy.ServeHTTP(w, r)
}

// Run starts the proxy and blocks until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.addr, Handler: s}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping proxy...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting proxy", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
