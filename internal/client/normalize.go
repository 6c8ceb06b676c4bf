package client

// normalize.go is the single tolerance boundary for the backend's
// duck-typed payloads.  The backend mixes PascalCase and camelCase field
// names (Row vs row, SeatNumber vs seatNumber) and sometimes returns
// numbers as strings.  Everything here maps any accepted shape onto the
// canonical model types; the seat grid builder and the handlers stay
// strict.

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

// fieldMap is a JSON object with lower-cased keys, so "SeatNumber" and
// "seatNumber" land on the same entry.
type fieldMap map[string]json.RawMessage

func newFieldMap(data []byte) (fieldMap, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(fieldMap, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = v
	}
	return out, nil
}

// pick returns the first present field among the given lower-case names.
func (f fieldMap) pick(names ...string) (json.RawMessage, bool) {
	for _, n := range names {
		if v, ok := f[n]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

func (f fieldMap) str(names ...string) string {
	v, ok := f.pick(names...)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	// numeric ids arrive unquoted; render them as their literal text
	return strings.Trim(string(v), `"`)
}

func (f fieldMap) integer(names ...string) (int, bool) {
	v, ok := f.pick(names...)
	if !ok {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(v, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return parsed, true
		}
	}
	var fl float64
	if err := json.Unmarshal(v, &fl); err == nil {
		return int(fl), true
	}
	return 0, false
}

func (f fieldMap) unsigned(names ...string) (uint64, bool) {
	n, ok := f.integer(names...)
	if !ok || n < 0 {
		return 0, false
	}
	return uint64(n), true
}

func (f fieldMap) float(names ...string) (float64, bool) {
	v, ok := f.pick(names...)
	if !ok {
		return 0, false
	}
	var fl float64
	if err := json.Unmarshal(v, &fl); err == nil {
		return fl, true
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

func (f fieldMap) boolean(names ...string) bool {
	v, ok := f.pick(names...)
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strings.EqualFold(s, "true") || s == "1"
	}
	var n int
	if err := json.Unmarshal(v, &n); err == nil {
		return n != 0
	}
	return false
}

// unwrapList accepts a bare JSON array or an object wrapping one under
// "items" or "data", which the backend alternates between on paged and
// unpaged endpoints.
func unwrapList(data []byte) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	f, err := newFieldMap(data)
	if err != nil {
		return nil, fmt.Errorf("response is neither a list nor an object: %w", err)
	}
	if inner, ok := f.pick("items", "data"); ok {
		if err := json.Unmarshal(inner, &list); err != nil {
			return nil, fmt.Errorf("wrapped list has unexpected shape: %w", err)
		}
		return list, nil
	}
	return nil, fmt.Errorf("response carries no item list")
}

// unwrapObject peels a {"data": {...}} envelope when present.
func unwrapObject(data []byte) (fieldMap, error) {
	f, err := newFieldMap(data)
	if err != nil {
		return nil, err
	}
	if inner, ok := f.pick("data"); ok {
		if nested, err := newFieldMap(inner); err == nil {
			return nested, nil
		}
	}
	return f, nil
}

// decodeRoom maps a room payload onto model.Room.  Row and seat counts may
// arrive under several names and as strings; both are coerced to ints.
// Dimension validation is left to the grid builder.
func decodeRoom(data []byte) (model.Room, error) {
	f, err := unwrapObject(data)
	if err != nil {
		return model.Room{}, fmt.Errorf("decode room: %w", err)
	}
	room := model.Room{Number: f.str("roomnumber", "number", "name")}
	if id, ok := f.unsigned("id"); ok {
		room.ID = id
	}
	if rows, ok := f.integer("row", "rowcount", "rows", "seatrows"); ok {
		room.RowCount = rows
	}
	if per, ok := f.integer("seatinrow", "seatsperrow", "seatcols"); ok {
		room.SeatsPerRow = per
	}
	return room, nil
}

// decodeSeatRecord maps one seat payload onto model.SeatRecord.  The row
// letter is trimmed and upper-cased; seat numbers given as strings are
// parsed; occupancy comes from the Tickets (or bookings) array's
// projection ids.
func decodeSeatRecord(data json.RawMessage) (model.SeatRecord, error) {
	f, err := newFieldMap(data)
	if err != nil {
		return model.SeatRecord{}, fmt.Errorf("decode seat: %w", err)
	}
	rec := model.SeatRecord{
		ID:        f.str("id"),
		Row:       strings.ToUpper(strings.TrimSpace(f.str("row", "rowlabel"))),
		IsVip:     f.boolean("isvip", "vip"),
		BookedFor: mapset.NewSet[uint64](),
	}
	if n, ok := f.integer("seatnumber", "number"); ok {
		rec.Number = n
	}
	if rec.ID == "" || rec.Row == "" || rec.Number < 1 {
		return model.SeatRecord{}, fmt.Errorf("seat record missing id, row or number: %s", string(data))
	}
	if rawTickets, ok := f.pick("tickets", "bookings"); ok {
		var tickets []json.RawMessage
		if err := json.Unmarshal(rawTickets, &tickets); err == nil {
			for _, t := range tickets {
				tf, err := newFieldMap(t)
				if err != nil {
					continue
				}
				if pid, ok := tf.unsigned("projectionid", "showtimeid"); ok {
					rec.BookedFor.Add(pid)
				}
			}
		}
	}
	return rec, nil
}

// decodeSeatRecords maps a seat list payload onto canonical records.
// Individual malformed entries are dropped rather than failing the whole
// list; a slot with no surviving record renders as unavailable anyway.
func decodeSeatRecords(data []byte) ([]model.SeatRecord, error) {
	items, err := unwrapList(data)
	if err != nil {
		return nil, fmt.Errorf("decode seats: %w", err)
	}
	out := make([]model.SeatRecord, 0, len(items))
	for _, item := range items {
		rec, err := decodeSeatRecord(item)
		if err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeGenre(data json.RawMessage) (model.Genre, error) {
	f, err := newFieldMap(data)
	if err != nil {
		return model.Genre{}, err
	}
	g := model.Genre{Name: f.str("name"), Description: f.str("description")}
	if id, ok := f.unsigned("id"); ok {
		g.ID = id
	}
	return g, nil
}

func decodeMovie(data json.RawMessage) (model.Movie, error) {
	f, err := newFieldMap(data)
	if err != nil {
		return model.Movie{}, fmt.Errorf("decode movie: %w", err)
	}
	m := model.Movie{
		Title:       f.str("title", "name"),
		Description: f.str("description"),
		ImageURL:    f.str("imageurl", "posterurl"),
		ReleaseDate: f.str("releasedate"),
	}
	if id, ok := f.unsigned("id"); ok {
		m.ID = id
	}
	if d, ok := f.integer("duration"); ok && d > 0 {
		m.Duration = uint32(d)
	}
	if rawGenres, ok := f.pick("genres"); ok {
		var genres []json.RawMessage
		if err := json.Unmarshal(rawGenres, &genres); err == nil {
			for _, g := range genres {
				if genre, err := decodeGenre(g); err == nil {
					m.Genres = append(m.Genres, genre)
				}
			}
		}
	}
	return m, nil
}

// decodeShowTime maps one projection payload onto model.ShowTime.  The
// room linkage is kept as a nested object; a missing room leaves Room nil
// and is reported to the user as a configuration error further up.
func decodeShowTime(data json.RawMessage) (model.ShowTime, error) {
	f, err := newFieldMap(data)
	if err != nil {
		return model.ShowTime{}, fmt.Errorf("decode showtime: %w", err)
	}
	st := model.ShowTime{
		StartTime: f.str("starttime", "startsat"),
		EndTime:   f.str("endtime", "endsat"),
	}
	if id, ok := f.unsigned("id"); ok {
		st.ID = id
	}
	if p, ok := f.float("price", "baseprice"); ok {
		st.Price = p
	}
	if rawRoom, ok := f.pick("room"); ok {
		if room, err := decodeRoom(rawRoom); err == nil {
			st.Room = &room
		}
	}
	return st, nil
}

func decodeTicket(data []byte) (model.Ticket, error) {
	f, err := unwrapObject(data)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("decode ticket: %w", err)
	}
	t := model.Ticket{
		AppTransID: f.str("apptransid"),
		MovieTitle: f.str("movietitle", "filmtitle"),
		Status:     f.str("status"),
		CreatedAt:  f.str("createdat", "bookingdate"),
	}
	if id, ok := f.unsigned("id", "ticketid"); ok {
		t.ID = id
	}
	if total, ok := f.float("totalprice", "amount"); ok {
		t.TotalPrice = total
	}
	if rawSeats, ok := f.pick("seats", "seatlabels"); ok {
		var labels []string
		if err := json.Unmarshal(rawSeats, &labels); err == nil {
			t.Seats = labels
		} else {
			// some endpoints return seats as one comma-joined string
			var joined string
			if err := json.Unmarshal(rawSeats, &joined); err == nil && joined != "" {
				for _, part := range strings.Split(joined, ",") {
					t.Seats = append(t.Seats, strings.TrimSpace(part))
				}
			}
		}
	}
	return t, nil
}

func decodeUser(data []byte) (model.User, error) {
	f, err := unwrapObject(data)
	if err != nil {
		return model.User{}, fmt.Errorf("decode profile: %w", err)
	}
	u := model.User{
		FullName:    f.str("fullname", "name"),
		Email:       f.str("email"),
		PhoneNumber: f.str("phonenumber"),
	}
	if id, ok := f.unsigned("id"); ok {
		u.ID = id
	}
	if role, ok := f.integer("role"); ok {
		u.Role = role
	}
	return u, nil
}
