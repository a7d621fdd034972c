package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/nftmart-dev/nftmart-contract-sdk/hostfuncs"
	sdklog "github.com/nftmart-dev/nftmart-contract-sdk/log"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel    string
	metricsAddr string
	verbose     bool
}

type app struct {
	logger  *slog.Logger
	metrics *hostfuncs.Metrics
	server  *http.Server
	flags   globalFlags
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "nftmart-sandbox",
		Short:         "Run the NFTMart demonstration contract against an in-memory extension host",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.shutdown(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "shorthand for --log-level=debug")
	root.PersistentFlags().StringVar(&a.flags.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while running")

	root.AddCommand(newRunCmd(a), newMetadataCmd(), newEncodeCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.flags.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(sdklog.NewHandler(sdklog.WithLevel(level), sdklog.WithWriter(cmd.ErrOrStderr())))
	slog.SetDefault(a.logger)

	a.metrics = hostfuncs.NewMetrics("nftmart_sandbox")
	if a.flags.metricsAddr == "" {
		return nil
	}

	ln, err := net.Listen("tcp", a.flags.metricsAddr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	a.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", slog.String("error", err.Error()))
		}
	}()
	a.logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))
	return nil
}

func (a *app) shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return a.server.Shutdown(ctx)
}
