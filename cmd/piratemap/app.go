package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/piratemap"
	"github.com/aretw0/piratemap/internal/config"
	"github.com/aretw0/piratemap/internal/logging"
	"github.com/aretw0/piratemap/pkg/adapters/memory"
	"github.com/aretw0/piratemap/pkg/adapters/redis"
	"github.com/aretw0/piratemap/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

// app is the wiring shared by every command.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	decoder  *piratemap.Decoder
	closers  []func() error
}

func newApp(cmd *cobra.Command) (*app, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	dir, _ := flags.GetString("dir")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}

	a := &app{
		cfg:      cfg,
		logger:   logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr()),
		registry: prometheus.NewRegistry(),
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := []piratemap.Option{
		piratemap.WithLogger(a.logger),
		piratemap.WithMetrics(observability.NewMetrics(a.registry)),
	}

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		opts = append(opts, piratemap.WithCache(memory.NewCache()))
	case config.CacheRedis:
		rc := redis.New(cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB,
			redis.WithTTL(cfg.Cache.TTL),
			redis.WithPrefix(cfg.Cache.Redis.Prefix),
		)
		if err := rc.Ping(commandContext(cmd)); err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("redis cache unavailable at %s: %w", cfg.Cache.Redis.Addr, err)
		}
		a.closers = append(a.closers, rc.Close)
		opts = append(opts, piratemap.WithCache(rc))
	}

	a.decoder = piratemap.New(dir, opts...)
	a.logger.Debug("app ready", "dir", dir, "cache", cfg.Cache.Backend)
	return a, nil
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn("close failed", "err", err)
		}
	}
}

// commandContext returns the command context, falling back to Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
