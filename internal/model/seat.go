package model

import mapset "github.com/deckarep/golang-set/v2"

// SeatRecord is the canonical, normalized form of a seat as reported by the
// backend inventory.  The normalization adapter in the client package is the
// only producer; everything past that boundary can rely on the types here
// without worrying about the backend's field-name or casing variants.
// Occupancy is the backend's truth; the client never mutates it.
//
// Fields:
//  ID        – backend seat identifier, kept as a string so placeholder and
//              numeric ids share one identity space.
//  Row       – upper-case row letter (e.g. "A").
//  Number    – seat number within the row, 1-based.
//  IsVip     – whether the seat carries the VIP surcharge.
//  BookedFor – set of projection ids that already have a ticket against
//              this seat.
type SeatRecord struct {
	ID        string
	Row       string
	Number    int
	IsVip     bool
	BookedFor mapset.Set[uint64]
}

// BookedForProjection reports whether a ticket already exists against this
// seat for the given projection.  A nil set means no bookings are known.
func (r SeatRecord) BookedForProjection(projectionID uint64) bool {
	return r.BookedFor != nil && r.BookedFor.Contains(projectionID)
}
