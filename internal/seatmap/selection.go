package seatmap

// Selection holds the seats currently chosen for the active booking.
// Membership is by seat id; insertion order is kept so receipts list seats
// in the order they were picked.  Availability is checked only at toggle
// time: a seat that later becomes unavailable on the backend stays in the
// selection and is rejected by the backend at submission, not here.
type Selection struct {
	order []SeatCell
	ids   map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle adds the seat when absent and removes it when present.  Toggling
// an unavailable seat is a silent no-op, matching how a clickable grid
// ignores clicks on blocked seats.  It reports whether the selection
// changed.
func (s *Selection) Toggle(seat SeatCell) bool {
	if !seat.IsAvailable {
		return false
	}
	if _, ok := s.ids[seat.ID]; ok {
		delete(s.ids, seat.ID)
		kept := s.order[:0]
		for _, cell := range s.order {
			if cell.ID != seat.ID {
				kept = append(kept, cell)
			}
		}
		s.order = kept
		return true
	}
	s.ids[seat.ID] = struct{}{}
	s.order = append(s.order, seat)
	return true
}

// Contains reports whether a seat id is part of the selection.
func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Seats returns the selected cells in insertion order.  The slice is a
// copy; mutating it does not affect the selection.
func (s *Selection) Seats() []SeatCell {
	out := make([]SeatCell, len(s.order))
	copy(out, s.order)
	return out
}

// Count returns the number of selected seats.
func (s *Selection) Count() int {
	return len(s.order)
}

// SeatIDs returns the selected seat ids in insertion order.
func (s *Selection) SeatIDs() []string {
	out := make([]string, 0, len(s.order))
	for _, cell := range s.order {
		out = append(out, cell.ID)
	}
	return out
}

// Labels returns the selected seat labels ("A1", "B3", ...) in insertion
// order, for receipts and payment descriptions.
func (s *Selection) Labels() []string {
	out := make([]string, 0, len(s.order))
	for _, cell := range s.order {
		out = append(out, cell.Label())
	}
	return out
}

// TotalPrice sums the stored price of every selected seat.  The VIP
// surcharge was already applied when the grid was built, so there is a
// single source of truth for the rule.  An empty selection totals zero.
func (s *Selection) TotalPrice() float64 {
	var total float64
	for _, cell := range s.order {
		total += cell.Price
	}
	return total
}
