// Package httpserver exposes the GraphQL schema over HTTP using gin.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/notesgraph/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 3 * time.Second
)

// Pinger reports whether a dependency is reachable; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	address string
	logger  logging.Logger
	srv     *http.Server
}

func New(address string, schema graphql.Schema, graphiql bool, db Pinger, l logging.Logger) *Server {
	logger := l.With("module", "http_server")

	gin.SetMode(gin.ReleaseMode)

	return &Server{
		address: address,
		logger:  logger,
		srv: &http.Server{
			Addr:              address,
			Handler:           newRouter(schema, graphiql, db, logger),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return s.srv.Shutdown(shutdownCtx)
	})

	eg.Go(func() error {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

		if err := s.srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	return eg.Wait()
}
