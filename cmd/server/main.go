package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thedidscuf/GameYoutube/internal/config"
	"github.com/thedidscuf/GameYoutube/internal/dice"
	"github.com/thedidscuf/GameYoutube/internal/game"
	"github.com/thedidscuf/GameYoutube/internal/httpmw"
	"github.com/thedidscuf/GameYoutube/internal/logging"
	"github.com/thedidscuf/GameYoutube/internal/serverapp"
	"github.com/thedidscuf/GameYoutube/internal/store"
	"github.com/thedidscuf/GameYoutube/internal/studio"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		l := logging.New("error", "gameyoutube", os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}
	logger := logging.New(cfg.LogLevel, "gameyoutube", os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

type app struct {
	handler http.Handler
	limiter *httpmw.IPRateLimiter
	repo    *store.Repository
}

func (a *app) Close() error { return a.repo.Close() }

func buildApp(cfg *config.Server, logger zerolog.Logger, reg *prometheus.Registry) (*app, error) {
	bal, err := config.LoadGameBalance(cfg.Game)
	if err != nil {
		return nil, err
	}

	repo, err := store.Open(cfg.Store)
	if err != nil {
		return nil, err
	}

	var src dice.Source = dice.NewFromTime()
	if cfg.Game.RNGSeed != 0 {
		src = dice.New(cfg.Game.RNGSeed)
	}

	svc := studio.NewService(studio.Options{
		Engine:  game.NewEngine(bal, src, game.SystemClock),
		Repo:    repo,
		Logger:  logger,
		Metrics: studio.NewMetrics(reg),
		Premium: cfg.Game.Premium,
	})

	var limiter *httpmw.IPRateLimiter
	if cfg.HTTP.RateLimitRPS > 0 {
		limiter = httpmw.NewIPRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	}

	handler, err := serverapp.NewHandler(serverapp.Options{
		Service:       svc,
		Logger:        logger,
		Gatherer:      reg,
		RateLimiter:   limiter,
		CORSOrigins:   cfg.HTTP.CORSOrigins,
		StaticDir:     cfg.HTTP.StaticDir,
		UseDiskStatic: cfg.HTTP.DevStatic,
	})
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	logger.Info().
		Str("store", cfg.Store.Type).
		Bool("premium", cfg.Game.Premium).
		Int("channel_limit", bal.ChannelLimit(cfg.Game.Premium)).
		Msg("app_ready")
	return &app{handler: handler, limiter: limiter, repo: repo}, nil
}

func run(ctx context.Context, cfg *config.Server, logger zerolog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := buildApp(cfg, logger, reg)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.limiter != nil {
		go sweepLimiter(ctx, a.limiter, logger)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Address(),
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func sweepLimiter(ctx context.Context, l *httpmw.IPRateLimiter, logger zerolog.Logger) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := l.Sweep(); n > 0 {
				logger.Debug().Int("evicted", n).Msg("rate_limiter_swept")
			}
		}
	}
}
