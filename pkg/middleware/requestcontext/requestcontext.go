package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Error string `json:"error,omitempty"`
}

// Option enriches the request context, in order. An error aborts the request.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var err error
		ctx := c.UserContext()
		for i, opt := range opts {
			ctx, err = opt(ctx, c)
			if err != nil {
				rErr := requestcontextError{}
				if errors.As(err, &rErr) {
					return errors.WithStack(c.Status(rErr.status).JSON(Response{Error: rErr.message}))
				}

				logger.ErrorContext(c.UserContext(), "Failed to extract request context",
					slogx.Error(err),
					slog.String("event", "requestcontext/error"),
					slog.Int("option_index", i),
				)
				return errors.WithStack(c.Status(http.StatusInternalServerError).JSON(Response{Error: "internal server error"}))
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
