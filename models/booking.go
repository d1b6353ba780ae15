package models

import "time"

// Booking is the ephemeral record built when a mock payment succeeds.
// It is rendered on the confirmation page and then forgotten; nothing
// here is ever written to durable storage.
type Booking struct {
	Reference string    `json:"reference"`
	RoomID    string    `json:"roomId"`
	RoomName  string    `json:"roomName"`
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Nights    int       `json:"nights"`
	TotalCost float64   `json:"totalCost"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomResults is what one availability query produces: the rooms free
// for the whole range, the rooms with at least one conflicting date,
// and the no-rooms message when the available set came up empty. The
// two slices are complementary over the catalog before filtering.
type RoomResults struct {
	Available            []Room `json:"available"`
	PartiallyUnavailable []Room `json:"partiallyUnavailable"`
	Err                  string `json:"error,omitempty"`
}
