package apperror

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lnadoceria/doceria-api/internal/platform/logger"
)

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewHTTPErrorHandler maps application errors to JSON responses. Store error
// detail is only included in development.
func NewHTTPErrorHandler(log logger.ZapLogger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := errorBody{Error: "internal server error"}

		if appErr := As(err); appErr != nil {
			status = appErr.Status()
			body.Error = appErr.Message
			if appErr.Kind == KindStore {
				log.Error("store error",
					zap.String("path", c.Request().URL.Path),
					zap.Error(appErr.Err),
				)
				if development && appErr.Err != nil {
					body.Details = appErr.Err.Error()
				}
			}
		} else if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				body.Error = msg
			}
		} else {
			log.Error("unhandled error",
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
			if development {
				body.Details = err.Error()
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
