package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/khoadang148/galaxy-cinema-client/internal/client"
	"github.com/khoadang148/galaxy-cinema-client/internal/queue"
	qp "github.com/khoadang148/galaxy-cinema-client/internal/service"
)

// CheckoutHandler closes a booking: it submits the selection to the
// backend, asks the payment gateway for a redirect URL and, once the
// gateway calls back, verifies the payment and finalises the session.
// The seat prices sent to the backend are the ones stored on the grid
// cells; the backend re-validates availability and is the final word on
// whether the seats are still free.
type CheckoutHandler struct {
	API *client.Client
}

// NewCheckoutHandler constructs a CheckoutHandler.
func NewCheckoutHandler(api *client.Client) *CheckoutHandler {
	if api == nil {
		panic("nil client passed to NewCheckoutHandler")
	}
	return &CheckoutHandler{API: api}
}

// newAppTransID builds the app-side transaction id used to correlate the
// payment with this checkout across the gateway redirect.
func newAppTransID() string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Checkout handles POST /v1/booking/checkout.  An empty selection is
// rejected locally without touching the backend.  On success the response
// carries the gateway redirect URL; the ticket stays pending on the
// session until the payment callback confirms it.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no booking session"})
	}
	seats := sess.SelectedSeats()
	if len(seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seats selected"})
	}
	st := sess.ShowTime()
	if st == nil || st.Room == nil {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":    "booking has no showtime",
			"redirect": "/v1/movies",
		})
	}

	ids := make([]string, 0, len(seats))
	labels := make([]string, 0, len(seats))
	for _, s := range seats {
		ids = append(ids, s.ID)
		labels = append(labels, s.Label())
	}
	total := sess.TotalPrice()
	appTransID := newAppTransID()

	token := backendToken(c)
	ctx := c.Request().Context()

	ticketID, err := h.API.CreateTicket(ctx, token, client.TicketRequest{
		SeatAmount:   len(ids),
		SeatIDs:      ids,
		ProjectionID: st.ID,
		RoomID:       st.Room.ID,
		TotalPrice:   total,
		AppTransID:   appTransID,
	})
	if err != nil {
		return backendFail(c, err, "")
	}

	title := ""
	if m := sess.Movie(); m != nil {
		title = m.Title
	}
	orderURL, err := h.API.CreatePaymentOrder(ctx, token, client.PaymentOrderRequest{
		TicketID:    ticketID,
		Amount:      total,
		AppTransID:  appTransID,
		Description: "Movie ticket payment: " + title,
		Seats:       strings.Join(labels, ", "),
	})
	if err != nil {
		return backendFail(c, err, "")
	}

	sess.SetPendingPayment(ticketID, appTransID)

	return c.JSON(http.StatusOK, echo.Map{
		"ticket_id":    ticketID,
		"app_trans_id": appTransID,
		"order_url":    orderURL,
	})
}

// PaymentCallback handles GET /v1/booking/payment/callback, the landing
// route the gateway redirects back to.  It verifies the payment with the
// backend rather than trusting the redirect's status parameter, retains
// the paid ticket as the session's recent ticket, publishes a paid event
// and resets the booking state for the next purchase.
func (h *CheckoutHandler) PaymentCallback(c echo.Context) error {
	sess := sessionFrom(c)
	if sess == nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no booking session"})
	}
	appTransID := c.QueryParam("apptransid")
	if appTransID == "" {
		_, appTransID = sess.PendingPayment()
	}
	if appTransID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing apptransid"})
	}

	token := backendToken(c)
	ctx := c.Request().Context()

	paid, ticketID, err := h.API.CheckOrderStatus(ctx, token, appTransID)
	if err != nil {
		return backendFail(c, err, "")
	}
	if !paid {
		return c.JSON(http.StatusOK, echo.Map{"status": "pending", "app_trans_id": appTransID})
	}
	if ticketID == 0 {
		ticketID, _ = sess.PendingPayment()
	}

	ticket, err := h.API.GetTicket(ctx, token, ticketID)
	if err != nil {
		return backendFail(c, err, "")
	}
	// Backend ticket records can be sparse right after payment; fill the
	// receipt from what this session already knows.
	ticket.AppTransID = appTransID
	if ticket.MovieTitle == "" {
		if m := sess.Movie(); m != nil {
			ticket.MovieTitle = m.Title
		}
	}
	if len(ticket.Seats) == 0 {
		for _, s := range sess.SelectedSeats() {
			ticket.Seats = append(ticket.Seats, s.Label())
		}
	}
	if ticket.TotalPrice == 0 {
		ticket.TotalPrice = sess.TotalPrice()
	}

	ev := queue.BookingPaidEvent{
		TicketID:   ticket.ID,
		MovieTitle: ticket.MovieTitle,
		SeatLabels: ticket.Seats,
		TotalPrice: ticket.TotalPrice,
		AppTransID: appTransID,
		PaidAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if uid, err := getUserID(c); err == nil {
		ev.UserID = uid
	}
	if st := sess.ShowTime(); st != nil {
		ev.ProjectionID = st.ID
		ev.StartTime = st.StartTime
		if st.Room != nil {
			ev.RoomNumber = st.Room.Number
		}
	}

	sess.SetRecentTicket(&ticket)
	sess.Reset()

	// Publishing is best effort; a broker outage must not fail a payment
	// that already settled.
	if err := qp.PublishBookingPaid(ctx, ev); err != nil {
		c.Logger().Warnf("publish booking.paid failed: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "paid", "ticket": ticket})
}
