// Copyright 2025 The Semantic Kernel Agent Authors
// SPDX-License-Identifier: Apache-2.0

// Command echo-server runs the echo agent HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/yus04/semantic-kernel-agent/agent"
	"github.com/yus04/semantic-kernel-agent/auth"
	"github.com/yus04/semantic-kernel-agent/config"
	"github.com/yus04/semantic-kernel-agent/server"
	"github.com/yus04/semantic-kernel-agent/server/task"
)

const shutdownTimeout = 10 * time.Second

type cli struct {
	Config string `help:"Path to the configuration file." type:"path"`
	Host   string `help:"Listen host, overrides the configuration."`
	Port   int    `help:"Listen port, overrides the configuration."`
	Legacy bool   `help:"Also serve the deprecated /agent REST profile."`
	Debug  bool   `help:"Enable debug logging."`
}

func main() {
	var flags cli
	kctx := kong.Parse(&flags,
		kong.Name("echo-server"),
		kong.Description("Echo agent server speaking the A2A protocol."),
	)
	kctx.FatalIfErrorf(run(&flags))
}

func run(flags *cli) error {
	level := slog.LevelInfo
	if flags.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if flags.Config != "" {
		loaded, err := config.Load(flags.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flags.Host != "" {
		cfg.Server.Host = flags.Host
	}
	if flags.Port != 0 {
		cfg.Server.Port = config.Port(flags.Port)
	}

	store := task.NewInMemoryStore()
	if cfg.Database.DSN != "" {
		// The persistent store takes an injected *gorm.DB; this binary
		// ships without a database driver.
		logger.Warn("database.dsn is set but no driver is compiled in, using the in-memory store")
	}

	ag := agent.New(cfg, store)

	opts := []server.Option{server.WithLogger(logger)}
	if cfg.Auth.JWKSFile != "" {
		authn, err := auth.NewJWTAuthenticatorFromFile(cfg.Auth.JWKSFile)
		if err != nil {
			return fmt.Errorf("load jwks %s: %w", cfg.Auth.JWKSFile, err)
		}
		opts = append(opts, server.WithAuthenticator(authn))
		logger.Info("rpc endpoint requires bearer tokens", "jwks", cfg.Auth.JWKSFile)
	}
	if flags.Legacy {
		opts = append(opts, server.WithLegacyRoutes(ag.Kernel))
		logger.Info("legacy /agent routes enabled")
	}

	srv := server.New(ag.Card, ag.Executor, ag.Store, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
