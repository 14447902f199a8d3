package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"kubeui/internal/cluster"
	"kubeui/internal/config"
	"kubeui/internal/logging"
	"kubeui/internal/server"
)

var (
	version = "dev"
	commit  = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "kubeui:", err)
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "listen", Usage: "listen address, overrides PORT and KUBEUI_LISTEN"},
		&cli.StringFlag{Name: "kubeconfig", Usage: "path to a kubeconfig file"},
		&cli.StringFlag{Name: "in-cluster", Usage: "use in-cluster credentials: auto, true or false"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
	}

	return &cli.Command{
		Name:    "kubeui",
		Usage:   "read-only web dashboard for a Kubernetes cluster",
		Version: version + " (" + commit + ")",
		Flags:   flags,
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server (default)",
				Flags:  flags,
				Action: serve,
			},
			{
				Name:  "version",
				Usage: "print the build version",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "kubeui %s (%s)\n", version, commit)
					return err
				},
			},
		},
	}
}

func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if cmd.IsSet("listen") {
		cfg.Listen = cmd.String("listen")
	}
	if cmd.IsSet("kubeconfig") {
		cfg.Kubeconfig = cmd.String("kubeconfig")
	}
	if cmd.IsSet("in-cluster") {
		cfg.InCluster = cmd.String("in-cluster")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	return cfg, cfg.Validate()
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, sync, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer sync()

	mgr, err := cluster.NewManager(cluster.Options{Kubeconfig: cfg.Kubeconfig, InCluster: cfg.InCluster})
	if err != nil {
		logger.Error(err, "failed to init cluster manager")
		return err
	}
	logger.Info("cluster credentials resolved", "source", mgr.Source(), "host", mgr.Host())

	srv := server.New(mgr, server.Options{
		Token:          cfg.Token,
		RequestTimeout: cfg.RequestTimeout,
		WatchInterval:  cfg.WatchInterval,
		CORSOrigins:    cfg.CORSOrigins,
	}, logger)

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		// hijacked websocket connections are not tracked by Shutdown
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("kubeui listening", "addr", httpSrv.Addr, "version", version, "commit", commit, "auth", cfg.Token != "")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "listen failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, "graceful shutdown failed")
		return err
	}
	return nil
}
