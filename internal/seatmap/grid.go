// Package seatmap derives the display-ready seat grid for a projection
// from room geometry and the backend's normalized seat inventory.  The
// builder is strict: it expects canonical model.SeatRecord values and
// leaves all tolerance for backend field variants to the client package.
package seatmap

import (
	"errors"
	"fmt"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

// VIPMultiplier is the fixed surcharge applied to seats flagged as VIP.
const VIPMultiplier = 1.2

// maxRows caps sequential row letters at 'Z'.  Rooms with more rows need a
// multi-letter labeling extension that the backend does not use today.
const maxRows = 26

// ErrBadRoom is returned when the room dimensions cannot produce a grid.
// Handlers treat it as a configuration error: the user is sent back to
// showtime selection instead of retrying.
var ErrBadRoom = errors.New("invalid room dimensions")

// SeatType distinguishes standard seats from VIP seats.
type SeatType string

const (
	SeatStandard SeatType = "standard"
	SeatVIP      SeatType = "vip"
)

// SeatCell is the derived, display-ready representation of one physical
// seat merging room geometry with backend occupancy and type data.  Price
// is computed once here; downstream consumers must not re-derive it.
type SeatCell struct {
	ID          string   `json:"id"`
	Row         string   `json:"row"`
	Number      int      `json:"number"`
	Type        SeatType `json:"type"`
	Price       float64  `json:"price"`
	IsAvailable bool     `json:"isAvailable"`
}

// Label returns the human-facing seat label, e.g. "A1".
func (c SeatCell) Label() string {
	return fmt.Sprintf("%s%d", c.Row, c.Number)
}

// GridRow is one row of the grid.  The row letter is rendered on both
// edges of the row, so it is stored once and mirrored by the presentation.
type GridRow struct {
	Row   string     `json:"row"`
	Seats []SeatCell `json:"seats"`
}

// SeatGrid is the full grid for a projection: rows ascending by letter,
// seats within each row ascending by number.  Ordering is deterministic.
type SeatGrid struct {
	Rows []GridRow `json:"rows"`
}

// Find returns the cell with the given id, if present.
func (g SeatGrid) Find(id string) (SeatCell, bool) {
	for _, row := range g.Rows {
		for _, s := range row.Seats {
			if s.ID == id {
				return s, true
			}
		}
	}
	return SeatCell{}, false
}

// BuildGrid produces the seat grid for a showtime.  Every (row, number)
// slot in the room gets exactly one cell:
//
//   - a matching seat record yields a cell whose availability is false only
//     when the record carries a booking for this showtime's projection, and
//     whose price is the showtime price times the VIP multiplier when the
//     record is flagged VIP;
//   - a slot with no matching record yields an unavailable standard-price
//     placeholder, so gaps in the inventory can never be booked.
//
// Room dimensions outside [1, maxRows] x [1, ∞) are a configuration error.
func BuildGrid(room model.Room, records []model.SeatRecord, showtime model.ShowTime) (SeatGrid, error) {
	if room.RowCount < 1 || room.SeatsPerRow < 1 {
		return SeatGrid{}, fmt.Errorf("%w: rows=%d seats_per_row=%d", ErrBadRoom, room.RowCount, room.SeatsPerRow)
	}
	if room.RowCount > maxRows {
		return SeatGrid{}, fmt.Errorf("%w: %d rows exceeds the %d-row letter range", ErrBadRoom, room.RowCount, maxRows)
	}

	// Index records by row letter and seat number.  Row letters are
	// compared exactly; the normalization adapter upper-cases them before
	// they reach the builder.
	index := make(map[string]model.SeatRecord, len(records))
	for _, rec := range records {
		index[seatKey(rec.Row, rec.Number)] = rec
	}

	rows := make([]GridRow, 0, room.RowCount)
	for i := 0; i < room.RowCount; i++ {
		letter := string(rune('A' + i))
		seats := make([]SeatCell, 0, room.SeatsPerRow)
		for n := 1; n <= room.SeatsPerRow; n++ {
			rec, ok := index[seatKey(letter, n)]
			if !ok {
				seats = append(seats, SeatCell{
					ID:          fmt.Sprintf("missing-%s-%d", letter, n),
					Row:         letter,
					Number:      n,
					Type:        SeatStandard,
					Price:       showtime.Price,
					IsAvailable: false,
				})
				continue
			}
			typ := SeatStandard
			price := showtime.Price
			if rec.IsVip {
				typ = SeatVIP
				price = showtime.Price * VIPMultiplier
			}
			seats = append(seats, SeatCell{
				ID:          rec.ID,
				Row:         letter,
				Number:      n,
				Type:        typ,
				Price:       price,
				IsAvailable: !rec.BookedForProjection(showtime.ID),
			})
		}
		rows = append(rows, GridRow{Row: letter, Seats: seats})
	}
	return SeatGrid{Rows: rows}, nil
}

func seatKey(row string, number int) string {
	return fmt.Sprintf("%s#%d", row, number)
}
