// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/retdec-client/retdec-go/internal/tool"
	"github.com/retdec-client/retdec-go/lib/config"
	"github.com/retdec-client/retdec-go/lib/fakeservice"
	"github.com/retdec-client/retdec-go/lib/version"
)

// shutdownTimeout bounds how long in-flight requests may take once the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], tool.ProcessEnvironment())
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, env tool.Environment) int {
	var (
		cfg         fakeservice.Config
		listen      string
		debug       bool
		showVersion bool
		showHelp    bool
	)
	flagSet := pflag.NewFlagSet("retdec-fakeserver", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&listen, "listen", "127.0.0.1:8000", "address to listen on")
	flagSet.StringVarP(&cfg.APIKey, "api-key", "k", "", "the accepted API key (default $"+config.EnvAPIKey+")")
	flagSet.StringVar(&cfg.Prefix, "prefix", fakeservice.DefaultPrefix, "path prefix of the API")
	flagSet.IntVar(&cfg.PollsUntilFinished, "polls", 2, "status requests answered before a job finishes")
	flagSet.StringVar(&cfg.FailSuffix, "fail-suffix", ".fail", "input name suffix that makes a job fail (empty disables)")
	flagSet.BoolVar(&debug, "debug", false, "log every request")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&showHelp, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		tool.PrintError(env.Stderr, fmt.Errorf("%w (see retdec-fakeserver --help)", err), tool.ModeAuto)
		return 1
	}
	if showHelp {
		fmt.Fprintf(env.Stdout, "Serves a fake retdec API for local testing.\n\n")
		fmt.Fprintf(env.Stdout, "usage: retdec-fakeserver [flags]\n\n")
		fmt.Fprintf(env.Stdout, "flags:\n%s", flagSet.FlagUsages())
		return 0
	}
	if showVersion {
		fmt.Fprintf(env.Stdout, "retdec-fakeserver %s\n", version.Info())
		return 0
	}
	if cfg.APIKey == "" {
		cfg.APIKey = env.Getenv(config.EnvAPIKey)
	}
	if cfg.APIKey == "" {
		tool.PrintError(env.Stderr, errors.New("an API key is required (--api-key or $"+config.EnvAPIKey+")"), tool.ModeAuto)
		return 1
	}
	if cfg.PollsUntilFinished < 0 {
		tool.PrintError(env.Stderr, fmt.Errorf("--polls must not be negative, got %d", cfg.PollsUntilFinished), tool.ModeAuto)
		return 1
	}

	// The server's own lifecycle is worth seeing without --debug.
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))
	cfg.Logger = logger

	listener, err := net.Listen("tcp", listen)
	if err != nil {
		tool.PrintError(env.Stderr, fmt.Errorf("listening on %s: %w", listen, err), tool.ModeAuto)
		return 1
	}
	if err := serve(ctx, listener, fakeservice.New(cfg), logger); err != nil {
		tool.PrintError(env.Stderr, err, tool.ModeAuto)
		return 1
	}
	return 0
}

// serve handles connections on listener until ctx is cancelled, then
// shuts the server down gracefully.
func serve(ctx context.Context, listener net.Listener, handler http.Handler, logger *slog.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Info("fake retdec service listening", "address", listener.Addr().String())

	serveDone := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveDone <- err
		}
		close(serveDone)
	}()

	select {
	case <-ctx.Done():
		logger.Info("fake retdec service shutting down")
	case err := <-serveDone:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("fake retdec service stopped")
	return nil
}
