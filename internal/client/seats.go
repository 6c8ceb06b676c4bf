package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/khoadang148/galaxy-cinema-client/internal/model"
)

// seatPageSize matches the backend's paged seat endpoint.  Rooms are small
// enough that one page always covers the whole inventory.
const seatPageSize = 100

// GetRoom fetches the geometry of a room.  The returned dimensions are not
// validated here; the grid builder rejects unusable rooms.
func (c *Client) GetRoom(ctx context.Context, roomID uint64) (model.Room, error) {
	data, err := c.get(ctx, "", fmt.Sprintf("/api/Room/%d", roomID), nil)
	if err != nil {
		return model.Room{}, err
	}
	return decodeRoom(data)
}

// SeatsByRoom fetches the seat inventory of a room and normalizes it into
// canonical seat records, including each seat's booked projection ids.
func (c *Client) SeatsByRoom(ctx context.Context, roomID uint64) ([]model.SeatRecord, error) {
	q := url.Values{}
	q.Set("pageNumber", "1")
	q.Set("pageSize", strconv.Itoa(seatPageSize))
	q.Set("roomId", strconv.FormatUint(roomID, 10))
	data, err := c.get(ctx, "", "/api/seat/paged", q)
	if err != nil {
		return nil, err
	}
	return decodeSeatRecords(data)
}
