package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khoadang148/galaxy-cinema-client/internal/client"
)

// StaffHandler exposes the back-office surface.  Staff operations are
// thin authenticated proxies: the request body and query string are
// relayed to the backend verbatim and the backend's status and body come
// back untouched, so backend validation messages reach the operator
// as-is.  Role enforcement happens in middleware before these run.
type StaffHandler struct {
	API *client.Client
}

// NewStaffHandler constructs a StaffHandler.
func NewStaffHandler(api *client.Client) *StaffHandler {
	if api == nil {
		panic("nil client passed to NewStaffHandler")
	}
	return &StaffHandler{API: api}
}

// proxy relays the current request to the backend path and writes the
// backend response through unchanged.
func (h *StaffHandler) proxy(c echo.Context, method, path string) error {
	var body json.RawMessage
	if method != http.MethodGet && method != http.MethodDelete {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable request body"})
		}
		body = raw
	}
	status, resp, err := h.API.Forward(c.Request().Context(), method, backendToken(c), path, c.QueryParams(), body)
	if err != nil {
		return backendFail(c, err, "")
	}
	if len(resp) == 0 {
		return c.NoContent(status)
	}
	return c.JSONBlob(status, resp)
}

// Films management.

func (h *StaffHandler) ListFilms(c echo.Context) error {
	return h.proxy(c, http.MethodGet, "/api/Film")
}

func (h *StaffHandler) CreateFilm(c echo.Context) error {
	return h.proxy(c, http.MethodPost, "/api/Film")
}

func (h *StaffHandler) UpdateFilm(c echo.Context) error {
	return h.proxy(c, http.MethodPut, "/api/Film/"+c.Param("id"))
}

func (h *StaffHandler) DeleteFilm(c echo.Context) error {
	return h.proxy(c, http.MethodDelete, "/api/Film/"+c.Param("id"))
}

// Genres management.

func (h *StaffHandler) ListGenres(c echo.Context) error {
	return h.proxy(c, http.MethodGet, "/api/Genre")
}

func (h *StaffHandler) CreateGenre(c echo.Context) error {
	return h.proxy(c, http.MethodPost, "/api/Genre")
}

// Projections (showtimes) management.

func (h *StaffHandler) ListProjections(c echo.Context) error {
	return h.proxy(c, http.MethodGet, "/api/projection")
}

func (h *StaffHandler) CreateProjection(c echo.Context) error {
	return h.proxy(c, http.MethodPost, "/api/projection")
}

func (h *StaffHandler) DeleteProjection(c echo.Context) error {
	return h.proxy(c, http.MethodDelete, "/api/projection/"+c.Param("id"))
}

// Rooms are read-only from the back office; layout changes go through a
// separate facilities process on the backend side.

func (h *StaffHandler) GetRoom(c echo.Context) error {
	return h.proxy(c, http.MethodGet, "/api/Room/"+c.Param("id"))
}

// Bookings management.

func (h *StaffHandler) ListBookings(c echo.Context) error {
	return h.proxy(c, http.MethodGet, "/api/bookings")
}

func (h *StaffHandler) GetBooking(c echo.Context) error {
	return h.proxy(c, http.MethodGet, "/api/bookings/"+c.Param("id"))
}

func (h *StaffHandler) UpdateBooking(c echo.Context) error {
	return h.proxy(c, http.MethodPut, "/api/bookings/"+c.Param("id"))
}

func (h *StaffHandler) DeleteBooking(c echo.Context) error {
	return h.proxy(c, http.MethodDelete, "/api/bookings/"+c.Param("id"))
}
