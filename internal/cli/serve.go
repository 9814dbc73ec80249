package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sdutta9/mealscan/internal/config"
	"github.com/sdutta9/mealscan/internal/server"
)

var serveOpts struct {
	provider string
	model    string
	addr     string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long:  "Serve the analysis API over HTTP until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides(map[string]string{
			"provider": serveOpts.provider,
			"model":    serveOpts.model,
			"addr":     serveOpts.addr,
		}))
		if err != nil {
			return err
		}

		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer log.Sync()

		engine, err := buildEngine(cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeErr
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(engine, cfg.Server, log)
		if err := srv.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeErr
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveOpts.provider, "provider", "", "Inference provider (gemini, openai, ollama)")
	serveCmd.Flags().StringVar(&serveOpts.model, "model", "", "Model name")
}
