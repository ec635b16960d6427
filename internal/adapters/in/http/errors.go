package http

import (
	"errors"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/closingperiod"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/core/domain/model/user"
	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps use case failures to response codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, closingperiod.ErrInvalidClosingPeriod),
		errors.Is(err, product.ErrInvalidProduct),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidUser):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrProductOrderingDisabled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Unexpected failures are logged and hidden from the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"error", err,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
		)
		message = http.StatusText(http.StatusInternalServerError)
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

// errorHandler renders errors raised outside the handlers (routing, auth, rate limiting,
// request validation) with the same body as handler failures.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(status)
	} else {
		err = ctx.JSON(status, servers.Error{Code: status, Message: message})
	}
	if err != nil {
		ctx.Logger().Error(err)
	}
}
