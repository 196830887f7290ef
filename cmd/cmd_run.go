package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/core/indexer"
	"github.com/gaze-network/bubblegum-indexer/internal/config"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/pkg/automaxprocs"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Register Modules
var Modules = do.Package(
	do.LazyNamed("bubblegum", bubblegum.New),
	do.LazyNamed(bubblegum.WorkerName, bubblegum.NewWorker),
)

func NewRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the stream indexer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(cmd.Context()); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			conf := config.Load()
			return serve(cmd.Context(), conf, conf.EnableModules)
		},
	}

	flags := runCmd.Flags()
	flags.Bool("api-only", false, "Run only the health and metrics server")
	flags.String("modules", "bubblegum", "Enable specific modules to run. E.g. `bubblegum`")

	config.BindPFlag("api_only", flags.Lookup("api-only"))
	config.BindPFlag("enable_modules", flags.Lookup("modules"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

// serve runs the named indexers next to the HTTP server until the process
// is interrupted or one of them stops.
func serve(parent context.Context, conf config.Config, modules []string) error {
	if err := conf.Validate(); err != nil {
		return errors.WithStack(err)
	}

	// Initialize application process context
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)
	do.Provide(injector, func(i do.Injector) (*metrics.Metrics, error) {
		return metrics.New(do.MustInvoke[config.Config](i).Metrics), nil
	})
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		return newHTTPServer(do.MustInvoke[config.Config](i), do.MustInvoke[*metrics.Metrics](i)), nil
	})

	// Initialize worker context to separate worker's lifecycle from main process
	ctxWorker, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	ctxWorker = logger.WithContext(ctxWorker, slogx.Stringer("network", conf.Network))

	// Run modules
	{
		modules = lo.Map(modules, func(item string, _ int) string { return strings.TrimSpace(item) })
		modules = lo.Filter(modules, func(item string, _ int) bool { return item != "" })
		modules = lo.Uniq(modules)
		for _, module := range modules {
			ctx := logger.WithContext(ctxWorker, slogx.String("module", module))

			indexer, err := do.InvokeNamed[indexer.IndexerWorker](injector, module)
			if err != nil {
				if errors.Is(err, do.ErrServiceNotFound) {
					return errors.Errorf("Module %q is not supported", module)
				}
				return errors.Wrapf(err, "can't init module %q", module)
			}

			if !conf.APIOnly {
				go func() {
					// stop main process if indexer stopped
					defer stop()

					logger.InfoContext(ctx, "Starting indexer")
					if err := indexer.Run(ctx); err != nil {
						logger.ErrorContext(ctx, "Something went wrong, error during running indexer", slogx.Error(err))
					}
				}()
			}
		}
	}

	// Run HTTP server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if HTTP server stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctxWorker, "Bubblegum indexer started", slog.Any("modules", modules))

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}
