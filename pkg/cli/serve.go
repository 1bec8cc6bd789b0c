package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskmatrix/pkg/cli/config"
	httpctrl "github.com/secmon-lab/riskmatrix/pkg/controller/http"
	"github.com/secmon-lab/riskmatrix/pkg/repository/memory"
	"github.com/secmon-lab/riskmatrix/pkg/usecase"
	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
	"github.com/secmon-lab/riskmatrix/pkg/utils/metrics"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var addr string
	var detectLang bool
	var enableMetrics bool
	var sessionTTL time.Duration
	var sentryCfg config.Sentry
	seedCfg := config.NewSeedFile(false)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RISKMATRIX_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "detect-language",
			Usage:       "Start new sessions in the language negotiated from Accept-Language",
			Sources:     cli.EnvVars("RISKMATRIX_DETECT_LANGUAGE"),
			Destination: &detectLang,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics at /metrics",
			Value:       true,
			Sources:     cli.EnvVars("RISKMATRIX_METRICS"),
			Destination: &enableMetrics,
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "Evict browser sessions idle for longer than this",
			Value:       usecase.DefaultSessionTTL,
			Sources:     cli.EnvVars("RISKMATRIX_SESSION_TTL"),
			Destination: &sessionTTL,
		},
	}

	// Add shared config flags
	flags = append(flags, seedCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()
			logger.Info("Sentry configured", "sentry", sentryCfg)

			seed, err := seedCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load seed")
			}

			repo := memory.New()
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			ucOpts := []usecase.Option{
				usecase.WithLanguageDetection(detectLang),
				usecase.WithSessionTTL(sessionTTL),
			}
			var httpOpts []httpctrl.Options
			if enableMetrics {
				m := metrics.New()
				ucOpts = append(ucOpts, usecase.WithMetrics(m))
				httpOpts = append(httpOpts, httpctrl.WithMetrics(m))
			}

			uc := usecase.New(repo, ucOpts...)

			summary, err := seed.Apply(ctx, uc)
			if err != nil {
				return goerr.Wrap(err, "failed to apply seed", goerr.V("path", seedCfg.Path()))
			}
			if seedCfg.Path() != "" {
				logger.Info("Seed applied",
					"path", seedCfg.Path(),
					"companies", summary.Companies,
					"risks", summary.Risks,
					"controls", summary.Controls,
				)
			}

			httpHandler, err := httpctrl.New(uc, httpOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logger.Info("Starting HTTP server",
					"addr", addr,
					"metrics", enableMetrics,
					"detect_language", detectLang,
					"session_ttl", sessionTTL,
				)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server", goerr.V("addr", addr))
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logger.Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				return nil
			})

			if err := eg.Wait(); err != nil {
				return err
			}

			logger.Info("Server shutdown completed")
			return nil
		},
	}
}
