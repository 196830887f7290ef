package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// statuses maps the error kinds a handler may surface to a response status.
var statuses = []struct {
	kind   errs.ErrorKind
	status int
}{
	{errs.NotFound, http.StatusNotFound},
	{errs.InvalidArgument, http.StatusBadRequest},
	{errs.Unsupported, http.StatusNotImplemented},
	{errs.NotImplemented, http.StatusNotImplemented},
	{errs.Timeout, http.StatusGatewayTimeout},
	{errs.DatabaseError, http.StatusServiceUnavailable},
}

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).JSON(fiber.Map{
				"error": e.Message,
			}))
		}
		for _, s := range statuses {
			if errors.Is(err, s.kind) {
				return errors.WithStack(ctx.Status(s.status).JSON(fiber.Map{
					"error": s.kind.Error(),
				}))
			}
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error",
			slogx.String("event", "api_unhandled_error"),
			slogx.Error(err),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		}))
	}
}
