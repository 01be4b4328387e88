// Package server initializes and runs the bookstore API server: it opens
// the database, applies migrations, wires the services into the GraphQL
// schema, and serves HTTP until shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/server/auth"
	"github.com/dmitrijs2005/bookstore/internal/server/config"
	"github.com/dmitrijs2005/bookstore/internal/server/db"
	"github.com/dmitrijs2005/bookstore/internal/server/graphql"
	"github.com/dmitrijs2005/bookstore/internal/server/httpserver"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookstore/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpserver.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	// missing signing key is a fatal startup condition, not a request error
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		return nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	issuer := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenValidity)
	validator := auth.NewTokenValidator([]byte(cfg.SecretKey))

	us := services.NewUserService(conn, rm, issuer, logger)
	cs := services.NewCatalogService(conn, rm, logger)

	schema := graphql.NewSchema(graphql.NewResolver(us, cs))
	srv := httpserver.NewServer(cfg.Addr, schema, validator, logger)

	return &App{config: cfg, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
