// Package server initializes and runs the backend application. It wires
// configuration, storage, mail delivery and the HTTP API together and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mealgenie/backend/internal/logging"
	"github.com/mealgenie/backend/internal/server/ai"
	"github.com/mealgenie/backend/internal/server/config"
	"github.com/mealgenie/backend/internal/server/grocery"
	"github.com/mealgenie/backend/internal/server/httpapi"
	"github.com/mealgenie/backend/internal/server/mailer"
	"github.com/mealgenie/backend/internal/server/nutrition"
	"github.com/mealgenie/backend/internal/server/pantry"
	"github.com/mealgenie/backend/internal/server/recipes"
	"github.com/mealgenie/backend/internal/server/shared/db"
	"github.com/mealgenie/backend/internal/server/users"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  db.RepositoryManager
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := setupLogger(cfg.Env)

	rm, err := db.NewPostgresRepositoryManager(cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	var m mailer.Mailer
	m, err = mailer.NewSMTPMailer(cfg.SMTP)
	if err != nil {
		// the app stays usable without mail, password reset just fails loudly
		logger.Warn(context.Background(), "mailer disabled", "error", err)
		m = mailer.Disabled{}
	}

	us := users.NewService(rm.Users(), m, cfg)
	ps := pantry.NewService(rm.Pantry())
	gs := grocery.NewService(rm.Grocery())
	rs := recipes.NewService(rm.Recipes(), cfg)
	ns := nutrition.NewService(rm.Nutrition(), nutrition.NewAPINinjasClient(cfg.Nutrition))
	aiClient := ai.NewClient(cfg.AI)

	srv := httpapi.NewServer(cfg, logger, us, ps, gs, rs, ns, aiClient)

	return &App{config: cfg, logger: logger, repos: rm, server: srv}, nil
}

func setupLogger(env string) logging.Logger {
	var handler slog.Handler
	switch env {
	case envLocal:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return logging.NewSlogLogger(slog.New(handler))
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
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "env", app.config.Env)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
