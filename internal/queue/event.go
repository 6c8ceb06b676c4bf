// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingPaidEvent is published after the payment gateway confirms a
// booking.  It carries enough information for downstream consumers to
// log, notify or feed analytics without calling the backend again.
type BookingPaidEvent struct {
	TicketID     uint64   `json:"ticket_id"`
	UserID       uint64   `json:"user_id"`
	ProjectionID uint64   `json:"projection_id"`
	MovieTitle   string   `json:"movie_title"`
	RoomNumber   string   `json:"room_number"`
	StartTime    string   `json:"start_time"`
	SeatLabels   []string `json:"seats"`
	TotalPrice   float64  `json:"total_price"`
	AppTransID   string   `json:"app_trans_id"`
	PaidAt       string   `json:"paid_at"`
}
