package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoom_FieldVariants(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"pascal case", `{"Id": 5, "RoomNumber": "P5", "Row": 3, "SeatInRow": 4}`},
		{"camel case", `{"id": 5, "roomNumber": "P5", "row": 3, "seatInRow": 4}`},
		{"alternate names", `{"id": 5, "number": "P5", "rowCount": 3, "seatsPerRow": 4}`},
		{"stringly numbers", `{"id": 5, "roomNumber": "P5", "row": "3", "seatInRow": "4"}`},
		{"data envelope", `{"data": {"id": 5, "roomNumber": "P5", "row": 3, "seatInRow": 4}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			room, err := decodeRoom([]byte(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, uint64(5), room.ID)
			assert.Equal(t, "P5", room.Number)
			assert.Equal(t, 3, room.RowCount)
			assert.Equal(t, 4, room.SeatsPerRow)
		})
	}
}

func TestDecodeSeatRecord_Variants(t *testing.T) {
	rec, err := decodeSeatRecord([]byte(`{"Id": 12, "Row": " a ", "SeatNumber": "3", "IsVip": true}`))
	require.NoError(t, err)
	assert.Equal(t, "12", rec.ID)
	assert.Equal(t, "A", rec.Row, "row letters are trimmed and upper-cased")
	assert.Equal(t, 3, rec.Number)
	assert.True(t, rec.IsVip)

	rec, err = decodeSeatRecord([]byte(`{"id": "s9", "row": "B", "seatNumber": 1}`))
	require.NoError(t, err)
	assert.Equal(t, "s9", rec.ID)
	assert.False(t, rec.IsVip)
}

func TestDecodeSeatRecord_Occupancy(t *testing.T) {
	rec, err := decodeSeatRecord([]byte(`{
		"id": "s1", "row": "A", "seatNumber": 1,
		"Tickets": [{"ProjectionId": 9}, {"projectionId": 12}]
	}`))
	require.NoError(t, err)
	assert.True(t, rec.BookedForProjection(9))
	assert.True(t, rec.BookedForProjection(12))
	assert.False(t, rec.BookedForProjection(7))

	rec, err = decodeSeatRecord([]byte(`{
		"id": "s2", "row": "A", "seatNumber": 2,
		"bookings": [{"showTimeId": 4}]
	}`))
	require.NoError(t, err)
	assert.True(t, rec.BookedForProjection(4))
}

func TestDecodeSeatRecord_RejectsIncomplete(t *testing.T) {
	_, err := decodeSeatRecord([]byte(`{"row": "A", "seatNumber": 1}`))
	assert.Error(t, err, "a seat without an id is unusable")

	_, err = decodeSeatRecord([]byte(`{"id": "s1", "seatNumber": 1}`))
	assert.Error(t, err)

	_, err = decodeSeatRecord([]byte(`{"id": "s1", "row": "A", "seatNumber": 0}`))
	assert.Error(t, err)
}

func TestDecodeSeatRecords_DropsMalformedEntries(t *testing.T) {
	records, err := decodeSeatRecords([]byte(`{"items": [
		{"id": "s1", "row": "A", "seatNumber": 1},
		{"row": "A", "seatNumber": 2},
		{"id": "s3", "row": "A", "seatNumber": 3}
	]}`))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "s1", records[0].ID)
	assert.Equal(t, "s3", records[1].ID)
}

func TestUnwrapList_Envelopes(t *testing.T) {
	for _, payload := range []string{
		`[{"id": 1}, {"id": 2}]`,
		`{"items": [{"id": 1}, {"id": 2}]}`,
		`{"data": [{"id": 1}, {"id": 2}]}`,
	} {
		items, err := unwrapList([]byte(payload))
		require.NoError(t, err, payload)
		assert.Len(t, items, 2, payload)
	}

	_, err := unwrapList([]byte(`{"weird": true}`))
	assert.Error(t, err)
}

func TestDecodeShowTime_NestedRoom(t *testing.T) {
	st, err := decodeShowTime([]byte(`{
		"Id": 42, "Price": 100000, "StartTime": "2025-03-01T19:30:00",
		"Room": {"Id": 5, "RoomNumber": "P5", "Row": 2, "SeatInRow": 3}
	}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), st.ID)
	assert.InDelta(t, 100000, st.Price, 0.001)
	require.NotNil(t, st.Room)
	assert.Equal(t, 2, st.Room.RowCount)

	st, err = decodeShowTime([]byte(`{"id": 43, "price": 90000}`))
	require.NoError(t, err)
	assert.Nil(t, st.Room, "missing room linkage stays nil for the caller to flag")
}

func TestDecodeMovie_GenresAndNames(t *testing.T) {
	m, err := decodeMovie([]byte(`{
		"Id": 7, "Title": "Dune", "Duration": 155, "ReleaseDate": "2025-01-10",
		"Genres": [{"Id": 1, "Name": "Sci-Fi"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Dune", m.Title)
	assert.Equal(t, uint32(155), m.Duration)
	require.Len(t, m.Genres, 1)
	assert.Equal(t, "Sci-Fi", m.Genres[0].Name)
}

func TestDecodeTicket_SeatShapes(t *testing.T) {
	tk, err := decodeTicket([]byte(`{"id": 77, "totalPrice": 220000, "seats": ["A1", "B2"]}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(77), tk.ID)
	assert.Equal(t, []string{"A1", "B2"}, tk.Seats)

	tk, err = decodeTicket([]byte(`{"ticketId": 78, "amount": 100000, "seats": "A1, B2"}`))
	require.NoError(t, err)
	assert.Equal(t, uint64(78), tk.ID)
	assert.Equal(t, []string{"A1", "B2"}, tk.Seats, "comma-joined seat strings are split")
	assert.InDelta(t, 100000, tk.TotalPrice, 0.001)
}
