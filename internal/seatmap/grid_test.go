package seatmap

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

func record(id, row string, number int, vip bool, projections ...uint64) model.SeatRecord {
	r := model.SeatRecord{ID: id, Row: row, Number: number, IsVip: vip}
	if len(projections) > 0 {
		r.BookedFor = mapset.NewSet(projections...)
	}
	return r
}

func TestBuildGrid_Dimensions(t *testing.T) {
	room := model.Room{ID: 1, RowCount: 3, SeatsPerRow: 4}
	st := model.ShowTime{ID: 9, Price: 100000}

	grid, err := BuildGrid(room, nil, st)
	require.NoError(t, err)

	require.Len(t, grid.Rows, 3)
	assert.Equal(t, "A", grid.Rows[0].Row)
	assert.Equal(t, "B", grid.Rows[1].Row)
	assert.Equal(t, "C", grid.Rows[2].Row)
	for _, row := range grid.Rows {
		require.Len(t, row.Seats, 4)
		for i, seat := range row.Seats {
			assert.Equal(t, i+1, seat.Number, "seat numbers start at 1 and ascend")
			assert.Equal(t, row.Row, seat.Row)
		}
	}
}

func TestBuildGrid_RejectsBadDimensions(t *testing.T) {
	st := model.ShowTime{ID: 9, Price: 100000}

	_, err := BuildGrid(model.Room{RowCount: 0, SeatsPerRow: 4}, nil, st)
	assert.ErrorIs(t, err, ErrBadRoom)

	_, err = BuildGrid(model.Room{RowCount: 3, SeatsPerRow: 0}, nil, st)
	assert.ErrorIs(t, err, ErrBadRoom)

	_, err = BuildGrid(model.Room{RowCount: 27, SeatsPerRow: 4}, nil, st)
	assert.ErrorIs(t, err, ErrBadRoom, "row letters end at Z")
}

func TestBuildGrid_VipSurcharge(t *testing.T) {
	room := model.Room{ID: 1, RowCount: 1, SeatsPerRow: 2}
	st := model.ShowTime{ID: 9, Price: 100000}
	records := []model.SeatRecord{
		record("s1", "A", 1, false),
		record("s2", "A", 2, true),
	}

	grid, err := BuildGrid(room, records, st)
	require.NoError(t, err)

	std := grid.Rows[0].Seats[0]
	vip := grid.Rows[0].Seats[1]
	assert.Equal(t, SeatStandard, std.Type)
	assert.InDelta(t, 100000, std.Price, 0.001)
	assert.Equal(t, SeatVIP, vip.Type)
	assert.InDelta(t, 120000, vip.Price, 0.001, "vip price is the base price times 1.2")
}

func TestBuildGrid_AvailabilityScopedToProjection(t *testing.T) {
	room := model.Room{ID: 1, RowCount: 1, SeatsPerRow: 2}
	records := []model.SeatRecord{
		record("s1", "A", 1, false, 9),
		record("s2", "A", 2, false, 7),
	}

	grid, err := BuildGrid(room, records, model.ShowTime{ID: 9, Price: 100000})
	require.NoError(t, err)

	assert.False(t, grid.Rows[0].Seats[0].IsAvailable, "seat booked for this projection is unavailable")
	assert.True(t, grid.Rows[0].Seats[1].IsAvailable, "a booking for another projection does not block this one")
}

func TestBuildGrid_MissingSlotBecomesPlaceholder(t *testing.T) {
	room := model.Room{ID: 1, RowCount: 1, SeatsPerRow: 3}
	records := []model.SeatRecord{
		record("s1", "A", 1, false),
		record("s3", "A", 3, false),
	}

	grid, err := BuildGrid(room, records, model.ShowTime{ID: 9, Price: 100000})
	require.NoError(t, err)

	gap := grid.Rows[0].Seats[1]
	assert.Equal(t, "missing-A-2", gap.ID)
	assert.Equal(t, SeatStandard, gap.Type)
	assert.False(t, gap.IsAvailable, "inventory gaps can never be booked")
}

func TestBuildGrid_FindByID(t *testing.T) {
	room := model.Room{ID: 1, RowCount: 2, SeatsPerRow: 2}
	records := []model.SeatRecord{
		record("s1", "A", 1, false),
		record("s4", "B", 2, true),
	}

	grid, err := BuildGrid(room, records, model.ShowTime{ID: 9, Price: 50000})
	require.NoError(t, err)

	cell, ok := grid.Find("s4")
	require.True(t, ok)
	assert.Equal(t, "B2", cell.Label())

	_, ok = grid.Find("nope")
	assert.False(t, ok)
}

// End-to-end pricing scenario: a 2x3 room at 100,000 base price with one
// VIP seat. Picking one standard and the VIP seat totals 220,000.
func TestBuildGrid_SelectionTotalScenario(t *testing.T) {
	room := model.Room{ID: 5, RowCount: 2, SeatsPerRow: 3}
	st := model.ShowTime{ID: 42, Price: 100000}
	records := []model.SeatRecord{
		record("s1", "A", 1, false),
		record("s2", "A", 2, false),
		record("s3", "A", 3, false),
		record("s4", "B", 1, false),
		record("s5", "B", 2, true),
		record("s6", "B", 3, false, 42),
	}

	grid, err := BuildGrid(room, records, st)
	require.NoError(t, err)

	sel := NewSelection()
	a1, _ := grid.Find("s1")
	b2, _ := grid.Find("s5")
	b3, _ := grid.Find("s6")

	assert.True(t, sel.Toggle(a1))
	assert.True(t, sel.Toggle(b2))
	assert.False(t, sel.Toggle(b3), "booked seat cannot be selected")

	assert.Equal(t, 2, sel.Count())
	assert.Equal(t, []string{"A1", "B2"}, sel.Labels())
	assert.InDelta(t, 220000, sel.TotalPrice(), 0.001)
}
