// Package server wires configuration, storage, services and the GraphQL HTTP
// endpoint into a runnable application.
package server

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/notesgraph/internal/dbx"
	"github.com/dmitrijs2005/notesgraph/internal/logging"
	"github.com/dmitrijs2005/notesgraph/internal/server/auth"
	"github.com/dmitrijs2005/notesgraph/internal/server/config"
	"github.com/dmitrijs2005/notesgraph/internal/server/graph"
	"github.com/dmitrijs2005/notesgraph/internal/server/httpserver"
	"github.com/dmitrijs2005/notesgraph/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/notesgraph/internal/server/services"
)

// openPostgres is a seam for tests.
var openPostgres = dbx.OpenPostgres

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, w io.Writer) (*App, error) {
	logger, err := logging.New(w, c.LogLevel, c.LogPretty)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	return &App{config: c, logger: logger.With("app", "notesgraph")}, nil
}

// Run opens the database, applies migrations and serves HTTP until ctx is done.
func (app *App) Run(ctx context.Context) error {
	app.logger.Info(ctx, "Starting app...")
	if app.config.UsesDefaultSecret() {
		app.logger.Warn(ctx, "JWT secret is the built-in default, set NOTES_SECRET_KEY or -s")
	}

	db, err := openPostgres(ctx, app.config.DatabaseDSN, app.config.DatabaseConnectAttempts, app.logger)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	tokens := auth.NewTokens(app.config.SecretKey,
		app.config.AccessTokenValidityDuration, app.config.RefreshTokenValidityDuration)

	us := services.NewUserService(db, rm, tokens)
	ns := services.NewNoteService(db, rm)

	schema, err := graph.NewSchema(graph.NewResolver(us, ns, app.logger))
	if err != nil {
		return fmt.Errorf("schema error: %w", err)
	}

	srv := httpserver.New(app.config.EndpointAddrHTTP, schema, app.config.GraphiQL, db, app.logger)
	if err := srv.Run(ctx); err != nil {
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
