package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"loginflow/internal/authapi"
	"loginflow/internal/domain"
	"loginflow/internal/platform/logging"
	"loginflow/internal/platform/retry"
	"loginflow/internal/services/login"
	"loginflow/internal/store"
	"loginflow/internal/uiloop"
)

// Wire bundles the stores, clients and the UI loop for the CLI.
type Wire struct {
	Config   Config
	Logger   *zap.Logger
	Loop     *uiloop.Loop
	Auth     domain.AuthClient
	Sessions domain.SessionStore

	closers []func() error
}

// NewWire constructs the dependency graph from cfg. cfg must be validated.
func NewWire(cfg Config) (*Wire, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	w := &Wire{Config: cfg, Logger: logger}

	switch cfg.SessionBackend {
	case BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse LOGINFLOW_REDIS_URL: %w", err)
		}
		rdb := redis.NewClient(opts)
		w.closers = append(w.closers, rdb.Close)
		w.Sessions = store.NewRedisSessionStore(rdb, cfg.RedisPrefix, cfg.Profile, cfg.Passphrase)
	default:
		w.Sessions = store.NewSessionFileStore(cfg.Home, cfg.Profile, cfg.Passphrase)
	}

	client := authapi.NewHTTP(cfg.APIURL, cfg.ClientID)
	client.HTTP = &http.Client{Timeout: cfg.HTTPTimeout}
	client.Retry = retry.Policy{
		MaxAttempts:    cfg.RetryAttempts,
		InitialBackoff: cfg.RetryBackoff,
	}
	w.Auth = client

	w.Loop = uiloop.New()
	w.closers = append(w.closers, func() error { w.Loop.Close(); return nil })

	logger.Debug("wired",
		zap.String("api", cfg.APIURL),
		zap.String("session_backend", cfg.SessionBackend),
		zap.String("profile", cfg.Profile))
	return w, nil
}

// Context returns ctx carrying the application logger.
func (w *Wire) Context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, w.Logger)
}

// NewLoginController builds a login controller that navigates through nav.
// It must be driven from w.Loop.
func (w *Wire) NewLoginController(nav domain.Navigator) (*login.Controller, error) {
	return login.New(
		login.Config{
			SingleFlight: w.Config.SingleFlight,
			StepUpTTL:    w.Config.StepUpTTL,
		},
		login.Deps{
			Loop:      w.Loop,
			Client:    w.Auth,
			Sessions:  w.Sessions,
			Navigator: nav,
			Logger:    w.Logger,
		},
	)
}

// Close releases the loop and any backend connections.
func (w *Wire) Close() error {
	var errs []error
	for i := len(w.closers) - 1; i >= 0; i-- {
		errs = append(errs, w.closers[i]())
	}
	_ = w.Logger.Sync()
	return errors.Join(errs...)
}
