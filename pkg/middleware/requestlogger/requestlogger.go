package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/middleware/requestcontext"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type Config struct {
	WithRequestHeader    bool     `mapstructure:"request_header"`
	WithRequestQuery     bool     `mapstructure:"request_query"`
	Disable              bool     `mapstructure:"disable"` // Disable logger level `INFO`
	HiddenRequestHeaders []string `mapstructure:"hidden_request_headers"`

	// SkipPaths are never logged below error level, E.g. the scrape target.
	SkipPaths []string `mapstructure:"skip_paths"`
}

func New(config Config) fiber.Handler {
	hiddenRequestHeaders := lo.SliceToMap(config.HiddenRequestHeaders, func(header string) (string, struct{}) {
		return strings.TrimSpace(strings.ToLower(header)), struct{}{}
	})
	skipPaths := lo.SliceToMap(config.SkipPaths, func(path string) (string, struct{}) {
		return path, struct{}{}
	})
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		if err != nil || status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		if level == slog.LevelInfo {
			if _, skip := skipPaths[c.Path()]; skip || config.Disable {
				return errors.WithStack(err)
			}
		}

		requestAttrs := []slog.Attr{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", requestcontext.GetClientIP(c.UserContext())),
			slog.String("user_agent", string(c.Context().UserAgent())),
		}
		if config.WithRequestQuery {
			requestAttrs = append(requestAttrs, slog.String("query", string(c.Request().URI().QueryString())))
		}
		if config.WithRequestHeader {
			headers := make([]any, 0)
			for k, v := range c.GetReqHeaders() {
				if _, hidden := hiddenRequestHeaders[strings.ToLower(k)]; hidden {
					continue
				}
				headers = append(headers, slog.Any(k, v))
			}
			requestAttrs = append(requestAttrs, slog.Group("header", headers...))
		}

		attrs := []slog.Attr{
			slog.String("event", "api_request"),
			{Key: "request", Value: slog.GroupValue(requestAttrs...)},
			{Key: "response", Value: slog.GroupValue(
				slog.Int("status", status),
				slog.Int("length", len(c.Response().Body())),
			)},
			slog.Duration("latency", latency),
		}
		if level == slog.LevelError {
			logErr := err
			if logErr == nil {
				logErr = fiber.NewError(status)
			}
			attrs = append(attrs, slog.Any("error", logErr))
		}

		logger.LogAttrs(c.UserContext(), level, "Request Completed", attrs...)
		return errors.WithStack(err)
	}
}
