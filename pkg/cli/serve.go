package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tandem-lab/tandem/pkg/cli/config"
	controller "github.com/tandem-lab/tandem/pkg/controller/http"
	"github.com/tandem-lab/tandem/pkg/service/dateparse"
	"github.com/tandem-lab/tandem/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		reportCfg config.Report
	)

	flags := joinFlags(
		serverCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := reportCfg.Configure(); err != nil {
				return err
			}

			logger.Info("Starting tandem server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("report", reportCfg),
			)

			analyzer := usecase.NewAnalyzer(dateparse.New())
			server := controller.NewServer(
				ctx,
				serverCfg.Addr,
				analyzer,
				reportCfg.DelimiterRune(),
				reportCfg.ResultView(),
			)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
