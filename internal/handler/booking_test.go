package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoadang148/galaxy-cinema-client/internal/booking"
	"github.com/khoadang148/galaxy-cinema-client/internal/client"
	"github.com/khoadang148/galaxy-cinema-client/internal/middleware"
	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

// fakeBackend serves the subset of the cinema API the booking flow touches.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/Film/3", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Id": 3, "Title": "Dune", "Duration": 155}`))
	})
	mux.HandleFunc("/api/projection/by-film/3", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"Id": 42, "Price": 100000, "StartTime": "2025-03-01T19:30:00",
			 "Room": {"Id": 5, "RoomNumber": "P5", "Row": 2, "SeatInRow": 3}},
			{"Id": 43, "Price": 90000}
		]`))
	})
	mux.HandleFunc("/api/Room/5", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Id": 5, "RoomNumber": "P5", "Row": 2, "SeatInRow": 3}`))
	})
	mux.HandleFunc("/api/seat/paged", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [
			{"Id": "s1", "Row": "A", "SeatNumber": 1},
			{"Id": "s2", "Row": "A", "SeatNumber": 2},
			{"Id": "s3", "Row": "A", "SeatNumber": 3},
			{"Id": "s4", "Row": "B", "SeatNumber": 1},
			{"Id": "s5", "Row": "B", "SeatNumber": 2, "IsVip": true},
			{"Id": "s6", "Row": "B", "SeatNumber": 3, "Tickets": [{"ProjectionId": 42}]}
		]}`))
	})
	return httptest.NewServer(mux)
}

// call runs an echo handler with a pre-attached booking session and
// returns the recorder.
func call(t *testing.T, h echo.HandlerFunc, sess *booking.Session, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextSessionKey, sess)
	require.NoError(t, h(c))
	return rec
}

func TestBookingFlow_StartToSummary(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	h := NewBookingHandler(client.New(srv.URL))
	sess := booking.NewSession()

	// Start the booking for movie 3 / showtime 42.
	rec := call(t, h.StartBooking, sess, http.MethodPost, "/v1/booking/start",
		`{"movie_id": 3, "showtime_id": 42}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, sess.ShowTime())
	assert.Equal(t, uint64(42), sess.ShowTime().ID)

	// Load the seat map: 2 rows of 3, with one VIP and one booked seat.
	rec = call(t, h.GetSeatMap, sess, http.MethodGet, "/v1/booking/seats", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	grid := sess.Grid()
	require.NotNil(t, grid)
	require.Len(t, grid.Rows, 2)

	vip, ok := grid.Find("s5")
	require.True(t, ok)
	assert.InDelta(t, 120000, vip.Price, 0.001)

	taken, ok := grid.Find("s6")
	require.True(t, ok)
	assert.False(t, taken.IsAvailable)

	// Pick one standard and the VIP seat.
	rec = call(t, h.ToggleSeat, sess, http.MethodPost, "/v1/booking/seats/toggle", `{"seat_id": "s1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, h.ToggleSeat, sess, http.MethodPost, "/v1/booking/seats/toggle", `{"seat_id": "s5"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Toggling the booked seat succeeds but changes nothing.
	rec = call(t, h.ToggleSeat, sess, http.MethodPost, "/v1/booking/seats/toggle", `{"seat_id": "s6"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled struct {
		Changed bool `json:"changed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.False(t, toggled.Changed)

	assert.InDelta(t, 220000, sess.TotalPrice(), 0.001)

	rec = call(t, h.GetSummary, sess, http.MethodGet, "/v1/booking/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		Selection struct {
			SeatCount  int     `json:"seatCount"`
			TotalPrice float64 `json:"totalPrice"`
		} `json:"selection"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Selection.SeatCount)
	assert.InDelta(t, 220000, summary.Selection.TotalPrice, 0.001)
}

func TestStartBooking_ShowtimeWithoutRoomIsConflict(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	h := NewBookingHandler(client.New(srv.URL))
	sess := booking.NewSession()

	rec := call(t, h.StartBooking, sess, http.MethodPost, "/v1/booking/start",
		`{"movie_id": 3, "showtime_id": 43}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/movies/3", resp["redirect"], "the caller is sent back to showtime selection")
}

func TestToggleSeat_BeforeSeatMap(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	h := NewBookingHandler(client.New(srv.URL))
	sess := booking.NewSession()

	rec := call(t, h.ToggleSeat, sess, http.MethodPost, "/v1/booking/seats/toggle", `{"seat_id": "s1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResetBooking_KeepsReceipt(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	h := NewBookingHandler(client.New(srv.URL))
	sess := booking.NewSession()

	// Simulate a completed purchase, then reset.
	sess.SetRecentTicket(&model.Ticket{ID: 77, TotalPrice: 220000})
	rec := call(t, h.ResetBooking, sess, http.MethodPost, "/v1/booking/reset", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(t, h.RecentTicket, sess, http.MethodGet, "/v1/booking/recent-ticket", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
