package router

// This file registers staff-specific routes for managing the catalogue and
// bookings.  Staff operations are authenticated proxies to the backend
// administration API; the backend performs its own validation and the
// responses are relayed to the operator unchanged.

import (
	"github.com/labstack/echo/v4"

	"github.com/khoadang148/galaxy-cinema-client/internal/handler"
	"github.com/khoadang148/galaxy-cinema-client/internal/middleware"
)

// RegisterStaff registers STAFF-scoped endpoints under /v1/staff.
// All routes require a valid session token and the STAFF role.
func RegisterStaff(e *echo.Echo, s *handler.StaffHandler, sessionSecret string) {
	g := e.Group(
		"/v1/staff",
		middleware.SessionAuth(sessionSecret),
		middleware.RequireRole("STAFF"),
	)

	// ---- Films ----
	g.GET("/films", s.ListFilms)
	g.POST("/films", s.CreateFilm)
	g.PUT("/films/:id", s.UpdateFilm)
	g.DELETE("/films/:id", s.DeleteFilm)

	// ---- Genres ----
	g.GET("/genres", s.ListGenres)
	g.POST("/genres", s.CreateGenre)

	// ---- Projections ----
	g.GET("/projections", s.ListProjections)
	g.POST("/projections", s.CreateProjection)
	g.DELETE("/projections/:id", s.DeleteProjection)

	// ---- Rooms ----
	g.GET("/rooms/:id", s.GetRoom)

	// ---- Bookings ----
	g.GET("/bookings", s.ListBookings)
	g.GET("/bookings/:id", s.GetBooking)
	g.PUT("/bookings/:id", s.UpdateBooking)
	g.DELETE("/bookings/:id", s.DeleteBooking)
}
