// Package booking owns the transient state of an in-progress booking: the
// chosen movie, showtime, seat grid and seat selection, threaded from seat
// selection through checkout.  Sessions live in memory only; an incomplete
// booking does not survive a restart by design, since the backend owns all
// durable state.
package booking

import (
	"errors"
	"sync"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
	"github.com/khoadang148/galaxy-cinema-client/internal/seatmap"
)

// ErrNoGrid is returned when a seat toggle arrives before the grid has
// been built.  Toggles are only meaningful once room and seat data have
// both resolved.
var ErrNoGrid = errors.New("seat grid not built yet")

// ErrUnknownSeat is returned when a toggle names a seat id that is not
// part of the current grid.
var ErrUnknownSeat = errors.New("unknown seat id")

// ErrEmptySelection is returned when checkout is attempted with no seats
// selected.  No backend call is made in that case.
var ErrEmptySelection = errors.New("no seats selected")

// Session is the booking state for one browser session.  All methods are
// safe for concurrent use; requests for the same session are serialized on
// an internal mutex.  Reset returns the session to its initial empty shape
// except for the most recent completed ticket, which is retained so the
// receipt can still be shown after payment.
type Session struct {
	mu sync.Mutex

	movie     *model.Movie
	showtime  *model.ShowTime
	grid      *seatmap.SeatGrid
	selection *seatmap.Selection

	pendingTicketID uint64
	appTransID      string

	recentTicket *model.Ticket
}

// NewSession returns an empty booking session.
func NewSession() *Session {
	return &Session{selection: seatmap.NewSelection()}
}

// SetMovie records the movie being booked.
func (s *Session) SetMovie(m *model.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movie = m
}

// Movie returns the movie being booked, or nil.
func (s *Session) Movie() *model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movie
}

// SetShowTime records the chosen showtime.  Changing the showtime
// invalidates any previously built grid and selection.
func (s *Session) SetShowTime(st *model.ShowTime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showtime = st
	s.grid = nil
	s.selection = seatmap.NewSelection()
}

// ShowTime returns the chosen showtime, or nil.
func (s *Session) ShowTime() *model.ShowTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showtime
}

// SetGrid installs a freshly built seat grid and clears the selection, so
// a selection can never reference cells from an older grid.
func (s *Session) SetGrid(g *seatmap.SeatGrid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid = g
	s.selection = seatmap.NewSelection()
}

// Grid returns the current seat grid, or nil when none has been built.
func (s *Session) Grid() *seatmap.SeatGrid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Toggle flips the selection state of the seat with the given id.  It
// fails when no grid exists or the id is not part of it; toggling an
// unavailable seat succeeds but changes nothing.
func (s *Session) Toggle(seatID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid == nil {
		return false, ErrNoGrid
	}
	cell, ok := s.grid.Find(seatID)
	if !ok {
		return false, ErrUnknownSeat
	}
	return s.selection.Toggle(cell), nil
}

// SetSelection replaces the current selection wholesale.  Unavailable
// seats in the input are dropped, preserving the toggle precondition.
func (s *Session) SetSelection(seats []seatmap.SeatCell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := seatmap.NewSelection()
	for _, cell := range seats {
		sel.Toggle(cell)
	}
	s.selection = sel
}

// SelectedSeats returns the selected cells in the order they were added.
func (s *Session) SelectedSeats() []seatmap.SeatCell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Seats()
}

// TotalPrice returns the sum of the selected seats' stored prices.
func (s *Session) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.TotalPrice()
}

// SetPendingPayment records the ticket id and app transaction id of a
// checkout that has been handed to the payment collaborator, so the
// payment callback can correlate the redirect with this session.
func (s *Session) SetPendingPayment(ticketID uint64, appTransID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingTicketID = ticketID
	s.appTransID = appTransID
}

// PendingPayment returns the pending ticket id and app transaction id.
func (s *Session) PendingPayment() (uint64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingTicketID, s.appTransID
}

// SetRecentTicket retains the last completed ticket for receipt display.
// The record survives Reset on purpose.
func (s *Session) SetRecentTicket(t *model.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recentTicket = t
}

// RecentTicket returns the last completed ticket, or nil.
func (s *Session) RecentTicket() *model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recentTicket
}

// Reset clears the movie, showtime, grid, selection and pending payment.
// It never fails and always leaves the session in the same empty shape it
// started in.  The recent ticket is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movie = nil
	s.showtime = nil
	s.grid = nil
	s.selection = seatmap.NewSelection()
	s.pendingTicketID = 0
	s.appTransID = ""
}

// Empty reports whether the session carries no in-progress booking state.
// The retained recent ticket is ignored.
func (s *Session) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movie == nil && s.showtime == nil && s.grid == nil &&
		s.selection.Count() == 0 && s.pendingTicketID == 0 && s.appTransID == ""
}
