package rest

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tunecraft/auth-service/internal/domain/autherrors"
)

// ErrorHandler renders every failure in the response envelope. Tagged
// credential errors keep their status and message; anything unrecognized is
// reported as a generic 500 so internal detail never reaches the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var authErr *autherrors.Error
	if errors.As(err, &authErr) {
		resp := Response{
			Success:    false,
			StatusCode: authErr.Status,
			Message:    authErr.Message,
		}
		if len(authErr.Fields) > 0 {
			resp.Data = authErr.Fields
		}
		_ = c.JSON(authErr.Status, resp)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, Response{
			Success:    false,
			StatusCode: httpErr.Code,
			Message:    fmt.Sprintf("%v", httpErr.Message),
		})
		return
	}

	log.Printf("Unexpected error handling %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	fallback := autherrors.Unexpected()
	_ = c.JSON(http.StatusInternalServerError, Response{
		Success:    false,
		StatusCode: fallback.Status,
		Message:    fallback.Message,
	})
}
