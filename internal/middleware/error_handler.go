package middleware

import (
	"net/http"

	"smartShop/pkg/logger"

	jsonres "smartShop/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the catch-all for errors that escape the handlers, mostly
// echo routing and binding failures.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "error", err, "path", c.Path())
	}

	if jsonErr := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); jsonErr != nil {
		logger.Error("Failed to write error response", jsonErr)
	}
}
