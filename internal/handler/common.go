package handler // handler defines http handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/khoadang148/galaxy-cinema-client/internal/booking"
	"github.com/khoadang148/galaxy-cinema-client/internal/client"
	"github.com/khoadang148/galaxy-cinema-client/internal/middleware"
)

// getUserID extracts the user_id claim from echo.Context and converts it
// to uint64.  JWT claims decode numbers as float64, so several numeric
// representations are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// backendToken returns the backend bearer token stored by SessionAuth, or
// empty when the request is unauthenticated.
func backendToken(c echo.Context) string {
	if v, ok := c.Get("backend_token").(string); ok {
		return v
	}
	return ""
}

// sessionFrom returns the booking session attached by the BookingSession
// middleware.  A nil return means the route was registered without it,
// which is a wiring bug surfaced as a 500.
func sessionFrom(c echo.Context) *booking.Session {
	s, _ := c.Get(middleware.ContextSessionKey).(*booking.Session)
	return s
}

// backendFail translates a backend client error into a user-facing
// response.  Fetch failures surface as 502 with the backend's message;
// backend auth failures propagate as 401 so the UI can re-login.  When
// redirect is non-empty it is included so the page can send the user back
// to showtime selection instead of retrying.
func backendFail(c echo.Context, err error, redirect string) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		switch apiErr.Status {
		case http.StatusUnauthorized:
			status = http.StatusUnauthorized
		case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
			status = apiErr.Status
		}
		resp := echo.Map{"error": apiErr.Message}
		if redirect != "" {
			resp["redirect"] = redirect
		}
		return c.JSON(status, resp)
	}
	resp := echo.Map{"error": "could not reach the booking backend"}
	if redirect != "" {
		resp["redirect"] = redirect
	}
	return c.JSON(http.StatusBadGateway, resp)
}
