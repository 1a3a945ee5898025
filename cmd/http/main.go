package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fsanano/hello-api/internal/config"
	"fsanano/hello-api/internal/handler"
	"fsanano/hello-api/internal/repository"
	"fsanano/hello-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ":"+cfg.ServerPort)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to listen")
	}

	if err := run(ctx, cfg, logger, ln); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}

	logger.Info().Msg("server exiting")
}

// run serves on ln until ctx is cancelled, then shuts the server down
// within cfg.ShutdownTimeout.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger, ln net.Listener) error {
	// 2. Setup Store
	store := repository.NewStore()
	if cfg.SeedData {
		store.Seed()
	}

	// 3. Setup Logic
	h := handler.NewHandler(
		handler.Options{
			Logger:      logger,
			Development: cfg.IsDevelopment(),
			Runtime:     service.NewRuntimeInfo(),
		},
		handler.NewItemHandler(service.NewItemService(store)),
		handler.NewUserHandler(service.NewUserService(store)),
		handler.NewContactHandler(service.NewContactService(store)),
		handler.NewLoginHandler(service.NewLoginService(store)),
	)

	// 4. Setup Server
	server := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 5. Run Server with Graceful Shutdown
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", ln.Addr().String()).Str("env", cfg.Environment).Msg("starting server")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(cfg *config.Config) zerolog.Logger {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
