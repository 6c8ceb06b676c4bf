package model

// Room describes the geometry of a screening room.  The row count and
// seats-per-row values define the dimensions of the seat grid.  The values
// are immutable once fetched; the page that fetched them owns the copy.
//
// Fields:
//  ID          – backend identifier of the room.
//  Number      – human-facing room label (e.g. "P5").
//  RowCount    – number of seating rows, always >= 1 for a usable room.
//  SeatsPerRow – seats in every row, always >= 1 for a usable room.
type Room struct {
	ID          uint64 `json:"id"`
	Number      string `json:"roomNumber,omitempty"`
	RowCount    int    `json:"rowCount"`
	SeatsPerRow int    `json:"seatsPerRow"`
}

// ShowTime represents a scheduled projection of a movie in a specific room.
// It carries the base ticket price from which seat prices are derived.
//
// Fields:
//  ID        – backend projection identifier.
//  Price     – base ticket price for a standard seat.
//  StartTime – start timestamp string as returned by the backend.
//  EndTime   – end timestamp string, may be empty.
//  Room      – the room the projection is scheduled in (nil when the
//              backend omitted the linkage; callers must treat that as a
//              configuration error).
type ShowTime struct {
	ID        uint64  `json:"id"`
	Price     float64 `json:"price"`
	StartTime string  `json:"startTime,omitempty"`
	EndTime   string  `json:"endTime,omitempty"`
	Room      *Room   `json:"room,omitempty"`
}
