package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/khoadang148/galaxy-cinema-client/internal/booking"
	"github.com/khoadang148/galaxy-cinema-client/internal/config"
	"github.com/khoadang148/galaxy-cinema-client/internal/handler"
	"github.com/khoadang148/galaxy-cinema-client/internal/middleware"
)

// RegisterCustomer registers the booking flow under /v1.  All routes
// require a valid session token; both CUSTOMER and STAFF may book seats.
// The BookingSession middleware attaches (or creates) the per-browser
// booking session that carries the seat grid and selection between
// requests.  When a Redis client is available the whole group additionally
// sits behind the token-bucket rate limiter, since seat toggling and
// checkout are the endpoints worth protecting from burst traffic.
func RegisterCustomer(e *echo.Echo, b *handler.BookingHandler, ch *handler.CheckoutHandler, store *booking.Store, sessionSecret string, rdb *redis.Client) {
	mws := []echo.MiddlewareFunc{
		middleware.SessionAuth(sessionSecret),
		middleware.RequireRole("CUSTOMER", "STAFF"),
		middleware.BookingSession(store),
	}
	if rdb != nil {
		mws = append(mws, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	}
	g := e.Group("/v1/booking", mws...)

	// Select movie and showtime, then build the seat map for the room.
	g.POST("/start", b.StartBooking)
	g.GET("/seats", b.GetSeatMap)
	// Toggling a seat that is unavailable succeeds but changes nothing.
	g.POST("/seats/toggle", b.ToggleSeat)
	g.GET("/summary", b.GetSummary)
	g.POST("/reset", b.ResetBooking)

	// Checkout hands the selection to the backend and returns the payment
	// gateway redirect; the callback lands here after the gateway is done.
	g.POST("/checkout", ch.Checkout)
	g.GET("/payment/callback", ch.PaymentCallback)

	// Receipt of the most recent paid ticket, kept across resets.
	g.GET("/recent-ticket", b.RecentTicket)

	// Booking history comes straight from the backend.
	g.GET("/my-bookings", b.MyBookings)
}
