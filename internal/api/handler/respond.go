package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// proxy forwards an upstream response body to the client unmodified. The
// backend already wraps payloads in a {"data": ...} envelope; the portal
// adds nothing on top.
func proxy(c echo.Context, body json.RawMessage, err error) error {
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// readBody drains the request body for pass-through calls.
func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
	}
	return body, nil
}
