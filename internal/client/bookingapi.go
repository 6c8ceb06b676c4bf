package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

// TicketRequest is the checkout payload handed to the backend's ticket
// creation endpoint.  Prices are computed client-side from the grid; the
// backend re-validates seat availability and rejects stale selections.
type TicketRequest struct {
	SeatAmount   int      `json:"seatAmount"`
	SeatIDs      []string `json:"seatIds"`
	ProjectionID uint64   `json:"projectionId"`
	RoomID       uint64   `json:"roomId"`
	TotalPrice   float64  `json:"totalPrice"`
	AppTransID   string   `json:"appTransId"`
}

// PaymentOrderRequest asks the payment gateway (via the backend) for a
// redirect URL.  The URL is treated as an opaque string.
type PaymentOrderRequest struct {
	TicketID    uint64  `json:"ticketId"`
	Amount      float64 `json:"amount"`
	AppTransID  string  `json:"appTransId"`
	Description string  `json:"description"`
	Seats       string  `json:"seats"`
}

// CreateTicket submits the booking and returns the backend ticket id.
func (c *Client) CreateTicket(ctx context.Context, token string, req TicketRequest) (uint64, error) {
	data, err := c.do(ctx, "POST", token, "/Ticket/CreateTicket", nil, req)
	if err != nil {
		return 0, err
	}
	f, err := unwrapObject(data)
	if err != nil {
		return 0, fmt.Errorf("decode ticket response: %w", err)
	}
	id, ok := f.unsigned("id", "ticketid")
	if !ok {
		return 0, fmt.Errorf("ticket response carries no id")
	}
	return id, nil
}

// CreatePaymentOrder creates a ZaloPay order for a ticket and returns the
// gateway's redirect URL.
func (c *Client) CreatePaymentOrder(ctx context.Context, token string, req PaymentOrderRequest) (string, error) {
	data, err := c.do(ctx, "POST", token, "/Zalopay/CreateOrder", nil, req)
	if err != nil {
		return "", err
	}
	var res struct {
		OrderURL string `json:"orderUrl"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return "", fmt.Errorf("decode payment order response: %w", err)
	}
	if res.OrderURL == "" {
		return "", fmt.Errorf("payment order response carries no redirect url")
	}
	return res.OrderURL, nil
}

// CheckOrderStatus verifies a payment by app transaction id after the
// gateway redirects back.  It returns whether the payment settled and the
// ticket id the backend associated with it.
func (c *Client) CheckOrderStatus(ctx context.Context, token, appTransID string) (bool, uint64, error) {
	q := url.Values{}
	q.Set("apptransid", appTransID)
	data, err := c.get(ctx, token, "/ZaloPay/CheckOrderStatus", q)
	if err != nil {
		return false, 0, err
	}
	var res struct {
		Success  bool   `json:"success"`
		TicketID uint64 `json:"ticketId"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return false, 0, fmt.Errorf("decode order status response: %w", err)
	}
	return res.Success, res.TicketID, nil
}

// GetTicket fetches a ticket by id for receipt display.
func (c *Client) GetTicket(ctx context.Context, token string, id uint64) (model.Ticket, error) {
	data, err := c.get(ctx, token, fmt.Sprintf("/Ticket/GetTicketBYId/%d", id), nil)
	if err != nil {
		return model.Ticket{}, err
	}
	return decodeTicket(data)
}

// BookingsByUser fetches a user's booking history.
func (c *Client) BookingsByUser(ctx context.Context, token string, userID uint64) ([]model.Ticket, error) {
	q := url.Values{}
	q.Set("userId", strconv.FormatUint(userID, 10))
	data, err := c.get(ctx, token, "/api/bookings", q)
	if err != nil {
		return nil, err
	}
	items, err := unwrapList(data)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	out := make([]model.Ticket, 0, len(items))
	for _, item := range items {
		t, err := decodeTicket(item)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
