package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/khoadang148/galaxy-cinema-client/internal/booking"
	"github.com/khoadang148/galaxy-cinema-client/internal/client"
	"github.com/khoadang148/galaxy-cinema-client/internal/seatmap"
)

// BookingHandler drives the seat-selection flow: starting a booking for a
// showtime, building the seat map, toggling seats and summarising the
// selection.  All state lives on the caller's booking session; the remote
// backend is only read here, never written.  Seat availability is read
// once per seat-map load and not re-validated before checkout; a seat
// taken by another session in the meantime surfaces as a backend
// rejection at submission time.
type BookingHandler struct {
	API *client.Client // backend REST client
}

// NewBookingHandler constructs a BookingHandler.  The client must be
// non-nil.
func NewBookingHandler(api *client.Client) *BookingHandler {
	if api == nil {
		panic("nil client passed to NewBookingHandler")
	}
	return &BookingHandler{API: api}
}

// selectionView is the JSON shape of the current selection, listing seats
// in the order they were picked.
type selectionView struct {
	Seats      []seatmap.SeatCell `json:"seats"`
	SeatCount  int                `json:"seatCount"`
	TotalPrice float64            `json:"totalPrice"`
}

func viewSelection(s *booking.Session) selectionView {
	seats := s.SelectedSeats()
	return selectionView{Seats: seats, SeatCount: len(seats), TotalPrice: s.TotalPrice()}
}

// StartBooking handles POST /v1/booking/start.  The body names a movie
// and one of its showtimes; both are fetched fresh from the backend and
// recorded on the session.  A showtime without a room linkage is a
// configuration error: the caller is told to pick another showtime.
func (h *BookingHandler) StartBooking(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no booking session"})
	}
	var body struct {
		MovieID    uint64 `json:"movie_id"`
		ShowTimeID uint64 `json:"showtime_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.MovieID == 0 || body.ShowTimeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id and showtime_id are required"})
	}

	ctx := c.Request().Context()
	movie, err := h.API.GetFilm(ctx, body.MovieID)
	if err != nil {
		return backendFail(c, err, "/movies")
	}
	showtimes, err := h.API.ProjectionsByFilm(ctx, body.MovieID)
	if err != nil {
		return backendFail(c, err, movieURL(body.MovieID))
	}
	for _, st := range showtimes {
		if st.ID == body.ShowTimeID {
			if st.Room == nil || st.Room.ID == 0 {
				return c.JSON(http.StatusConflict, echo.Map{
					"error":    "showtime has no room assigned, please pick another showtime",
					"redirect": movieURL(body.MovieID),
				})
			}
			chosen := st
			sess.SetMovie(&movie)
			sess.SetShowTime(&chosen)
			return c.JSON(http.StatusOK, echo.Map{"movie": movie, "showtime": chosen})
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{
		"error":    "showtime not found for this movie",
		"redirect": movieURL(body.MovieID),
	})
}

// GetSeatMap handles GET /v1/booking/seatmap.  It fetches the room
// geometry and seat inventory for the session's showtime, builds the seat
// grid and installs it on the session, clearing any previous selection.
// Seat toggles are rejected until this has succeeded.
func (h *BookingHandler) GetSeatMap(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no booking session"})
	}
	st := sess.ShowTime()
	movie := sess.Movie()
	if st == nil || movie == nil {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":    "no showtime selected, please pick a showtime first",
			"redirect": "/movies",
		})
	}
	if st.Room == nil || st.Room.ID == 0 {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":    "showtime has no room assigned, please pick another showtime",
			"redirect": movieURL(movie.ID),
		})
	}

	ctx := c.Request().Context()
	room, err := h.API.GetRoom(ctx, st.Room.ID)
	if err != nil {
		return backendFail(c, err, movieURL(movie.ID))
	}
	records, err := h.API.SeatsByRoom(ctx, st.Room.ID)
	if err != nil {
		return backendFail(c, err, movieURL(movie.ID))
	}

	grid, err := seatmap.BuildGrid(room, records, *st)
	if err != nil {
		if errors.Is(err, seatmap.ErrBadRoom) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":    "room layout is invalid, please pick another showtime",
				"redirect": movieURL(movie.ID),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not build seat map"})
	}
	sess.SetGrid(&grid)
	return c.JSON(http.StatusOK, echo.Map{
		"movie":    movie,
		"showtime": st,
		"room":     room,
		"grid":     grid,
	})
}

// ToggleSeat handles POST /v1/booking/seats/toggle.  Toggling an
// unavailable seat is accepted and ignored; toggling before the seat map
// exists, or naming an unknown seat id, is an error.
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no booking session"})
	}
	var body struct {
		SeatID string `json:"seat_id"`
	}
	if err := c.Bind(&body); err != nil || body.SeatID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_id is required"})
	}
	changed, err := sess.Toggle(body.SeatID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNoGrid):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat map has not been loaded yet"})
		case errors.Is(err, booking.ErrUnknownSeat):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown seat id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle failed"})
	}
	view := viewSelection(sess)
	return c.JSON(http.StatusOK, echo.Map{
		"changed":   changed,
		"selection": view,
	})
}

// GetSummary handles GET /v1/booking/summary: the movie, showtime and
// selected seats in pick order with the computed total.
func (h *BookingHandler) GetSummary(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no booking session"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie":     sess.Movie(),
		"showtime":  sess.ShowTime(),
		"selection": viewSelection(sess),
	})
}

// ResetBooking handles POST /v1/booking/reset.  The session returns to
// its empty shape; the most recent completed ticket is kept for receipt
// display.
func (h *BookingHandler) ResetBooking(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no booking session"})
	}
	sess.Reset()
	return c.NoContent(http.StatusNoContent)
}

// RecentTicket handles GET /v1/booking/recent-ticket, serving the ticket
// retained from the last completed payment, if any.
func (h *BookingHandler) RecentTicket(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no booking session"})
	}
	t := sess.RecentTicket()
	if t == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no completed booking in this session"})
	}
	return c.JSON(http.StatusOK, t)
}

// MyBookings handles GET /v1/my-bookings and returns the authenticated
// user's booking history from the backend.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	tickets, err := h.API.BookingsByUser(c.Request().Context(), backendToken(c), userID)
	if err != nil {
		return backendFail(c, err, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"items": tickets})
}

func movieURL(id uint64) string {
	if id == 0 {
		return "/movies"
	}
	return "/movies/" + strconv.FormatUint(id, 10)
}
