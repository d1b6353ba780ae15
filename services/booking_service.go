package services

import (
	"fmt"
	"net/url"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/google/uuid"
)

// NoRoomsMessage is the presentation for a valid query that matched
// nothing. It is a result state, not an error condition.
const NoRoomsMessage = "No rooms available for the selected dates."

// BookingService drives the booking flow: resolving and filtering the
// room list for a stay, pricing a pick, and minting the ephemeral
// confirmation record.
type BookingService struct {
	Availability AvailabilityService
	Filter       FilterService
	Cost         CostService
}

func NewBookingService() *BookingService {
	return &BookingService{}
}

// ComputeResults is the single recomputation entry point the handlers
// call whenever dates or filters change: resolve the range against the
// catalog, apply the filter spec to both halves, and flag the no-rooms
// state when the available half came up empty.
func (s *BookingService) ComputeResults(rng models.DateRange, spec models.FilterSpec, cat *Catalog) models.RoomResults {
	available, partial := s.Availability.Resolve(rng, cat.Rooms, cat.Availability)

	results := models.RoomResults{
		Available:            s.Filter.Filter(available, spec),
		PartiallyUnavailable: s.Filter.Filter(partial, spec),
	}
	if len(results.Available) == 0 {
		results.Err = NoRoomsMessage
	}
	return results
}

// Confirm builds the ephemeral booking for a successful mock payment.
// Nothing is persisted; the record lives only on the confirmation page.
func (s *BookingService) Confirm(room models.Room, rng models.DateRange) models.Booking {
	return models.Booking{
		Reference: uuid.NewString(),
		RoomID:    room.ID,
		RoomName:  room.Name,
		CheckIn:   rng.CheckIn,
		CheckOut:  rng.CheckOut,
		Nights:    s.Cost.Nights(rng.CheckIn, rng.CheckOut),
		TotalCost: s.Cost.Cost(room, rng.CheckIn, rng.CheckOut),
		CreatedAt: time.Now(),
	}
}

// PaymentURL is the Book Now navigation target for a room and stay.
// Parameter order is part of the page contract, so the query string is
// assembled by hand rather than through url.Values.
func PaymentURL(roomID string, rng models.DateRange) string {
	return fmt.Sprintf("/payment?roomId=%s&checkIn=%s&checkOut=%s",
		url.QueryEscape(roomID),
		url.QueryEscape(utils.FormatISODate(rng.CheckIn)),
		url.QueryEscape(utils.FormatISODate(rng.CheckOut)),
	)
}
