package cmd

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/core/constants"
	"github.com/gaze-network/bubblegum-indexer/internal/config"
	"github.com/gaze-network/bubblegum-indexer/pkg/errorhandler"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
	"github.com/gaze-network/bubblegum-indexer/pkg/middleware/requestcontext"
	"github.com/gaze-network/bubblegum-indexer/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// newHTTPServer serves the operational endpoints, the health check and the
// Prometheus scrape target. The asset read API lives elsewhere.
func newHTTPServer(conf config.Config, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Bubblegum Indexer",
		ErrorHandler:          errorhandler.NewHTTPErrorHandler(),
		DisableStartupMessage: true,
	})
	app.
		Use(favicon.New()).
		Use(requestid.New()).
		Use(requestcontext.New(
			requestcontext.WithRequestId(),
			requestcontext.WithClientIP(conf.HTTPServer.RequestIP),
		)).
		Use(requestlogger.New(conf.HTTPServer.Logger)).
		Use(fiberrecover.New(fiberrecover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
				buf := make([]byte, 1024) // bufLen = 1024
				buf = buf[:runtime.Stack(buf, false)]
				logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", slogx.Any("panic", e), slog.String("stacktrace", string(buf)))
			},
		})).
		Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return errors.WithStack(c.Status(http.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"version": constants.Version,
			"network": conf.Network.String(),
		}))
	})

	if m.IsEnabled() {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	return app
}
