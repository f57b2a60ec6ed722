package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raysh454/xssrisk/internal/app"
	"github.com/raysh454/xssrisk/internal/logging"
	"github.com/raysh454/xssrisk/internal/observability"
	"github.com/raysh454/xssrisk/internal/server"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the HTTP analysis API",
		Example: "OPENAI_API_KEY=sk-... xssrisk serve --addr 0.0.0.0:8000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, v)
		},
	}

	cmd.Flags().String("addr", "127.0.0.1:8000", "Listen address")
	cmd.Flags().Int("max-conns", 256, "Maximum concurrent connections")
	_ = v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("server.max_conns", cmd.Flags().Lookup("max-conns"))
	return cmd
}

func runServe(cmd *cobra.Command, v *viper.Viper) error {
	cfg, logger, err := loadRuntime(v, os.Stdout)
	if err != nil {
		return err
	}

	metrics, err := observability.NewMetrics(observability.MetricsConfig{ServiceName: "xssrisk"})
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metrics.Shutdown(ctx)
	}()

	analyzer, err := app.NewAnalyzer(cfg, logger, app.WithMetrics(metrics))
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}

	srv, err := server.NewServer(server.Config{
		ListenAddr:   cfg.Server.Addr,
		MaxConns:     cfg.Server.MaxConns,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Logger:       logger.With(logging.Field{Key: "component", Value: "server"}),
	}, analyzer, metrics)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting xssrisk",
		logging.Field{Key: "addr", Value: cfg.Server.Addr},
		logging.Field{Key: "version", Value: app.ServiceVersion},
		logging.Field{Key: "openai_enabled", Value: analyzer.Status().OpenAIEnabled})
	return srv.Serve(ctx)
}
