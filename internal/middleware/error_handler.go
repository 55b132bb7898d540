package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"whatoGift/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors returned by handlers and by echo itself (404,
// 405, binder failures) as {"status": false, "message": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "method", c.Request().Method, "path", c.Path())
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]interface{}{
			"status":  false,
			"message": message,
		})
	}
	if err != nil {
		logger.Error("Failed to write error response", err)
	}
}
