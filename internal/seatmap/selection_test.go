package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cell(id string, price float64, available bool) SeatCell {
	return SeatCell{ID: id, Row: "A", Number: 1, Type: SeatStandard, Price: price, IsAvailable: available}
}

func TestSelection_ToggleAddsAndRemoves(t *testing.T) {
	sel := NewSelection()
	seat := cell("s1", 90000, true)

	assert.True(t, sel.Toggle(seat))
	assert.True(t, sel.Contains("s1"))

	assert.True(t, sel.Toggle(seat), "second toggle removes the seat")
	assert.False(t, sel.Contains("s1"))
	assert.Equal(t, 0, sel.Count())
}

func TestSelection_UnavailableSeatIsNoOp(t *testing.T) {
	sel := NewSelection()
	blocked := cell("s1", 90000, false)

	assert.False(t, sel.Toggle(blocked))
	assert.False(t, sel.Contains("s1"))
	assert.Zero(t, sel.TotalPrice())
}

func TestSelection_PreservesInsertionOrder(t *testing.T) {
	sel := NewSelection()
	first := cell("s1", 1, true)
	second := SeatCell{ID: "s2", Row: "B", Number: 3, Type: SeatVIP, Price: 2, IsAvailable: true}
	third := SeatCell{ID: "s3", Row: "C", Number: 2, Type: SeatStandard, Price: 3, IsAvailable: true}

	sel.Toggle(first)
	sel.Toggle(second)
	sel.Toggle(third)
	sel.Toggle(second) // remove the middle one

	assert.Equal(t, []string{"s1", "s3"}, sel.SeatIDs())
	assert.Equal(t, []string{"A1", "C2"}, sel.Labels())
}

func TestSelection_TotalPrice(t *testing.T) {
	sel := NewSelection()
	assert.Zero(t, sel.TotalPrice(), "empty selection totals zero")

	sel.Toggle(cell("s1", 90000, true))
	sel.Toggle(SeatCell{ID: "s2", Row: "A", Number: 2, Type: SeatVIP, Price: 108000, IsAvailable: true})
	assert.InDelta(t, 198000, sel.TotalPrice(), 0.001)
}

func TestSelection_SeatsReturnsCopy(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(cell("s1", 100, true))

	seats := sel.Seats()
	seats[0].ID = "mutated"

	assert.Equal(t, []string{"s1"}, sel.SeatIDs())
}
