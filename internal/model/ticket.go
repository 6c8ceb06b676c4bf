package model

// Ticket is the record of a completed (or pending-payment) booking as
// returned by the backend.  After a successful payment callback the most
// recent ticket is retained on the booking session for receipt display.
//
// Fields:
//  ID         – backend ticket identifier.
//  AppTransID – app-side transaction id used to correlate the payment.
//  MovieTitle – title of the booked film.
//  Seats      – seat labels in the order they were selected (e.g. "A1").
//  TotalPrice – total amount charged.
//  Status     – backend booking status string.
//  CreatedAt  – creation timestamp string from the backend.
type Ticket struct {
	ID         uint64   `json:"id"`
	AppTransID string   `json:"appTransId,omitempty"`
	MovieTitle string   `json:"movieTitle,omitempty"`
	Seats      []string `json:"seats,omitempty"`
	TotalPrice float64  `json:"totalPrice"`
	Status     string   `json:"status,omitempty"`
	CreatedAt  string   `json:"createdAt,omitempty"`
}
