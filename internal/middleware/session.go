package middleware

// session.go attaches the booking session to requests on the booking flow
// routes.  The session id travels in a cookie; when the cookie is missing
// or names an expired session a fresh one is created transparently, so the
// flow always has a session to work with.  Sessions are in-memory only: a
// restart loses in-progress bookings by design.

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/khoadang148/galaxy-cinema-client/internal/booking"
)

// bookingCookie is the cookie carrying the booking session id.
const bookingCookie = "booking_session"

// ContextSessionKey is the context key under which the *booking.Session is
// stored for handlers.
const ContextSessionKey = "booking_session"

// BookingSession returns a middleware that resolves (or creates) the
// caller's booking session and stores it in the echo context.
func BookingSession(store *booking.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sess *booking.Session
			if cookie, err := c.Cookie(bookingCookie); err == nil {
				if s, ok := store.Get(cookie.Value); ok {
					sess = s
				}
			}
			if sess == nil {
				id, s := store.Create()
				sess = s
				c.SetCookie(&http.Cookie{
					Name:     bookingCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(ContextSessionKey, sess)
			return next(c)
		}
	}
}
