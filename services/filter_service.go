package services

import (
	"strconv"
	"strings"

	"hotel-booking/models"
)

// FilterService narrows a room list by the three filter dimensions.
// Pure and order-preserving; applying the same spec twice changes
// nothing.
type FilterService struct{}

// Filter keeps the rooms matching every constrained dimension of spec.
// Room type matches by substring ("Suite" also hits "VIP Suite"),
// max guests by exact count, price by inclusive "low-high" bounds.
func (FilterService) Filter(rooms []models.Room, spec models.FilterSpec) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if matchesFilter(room, spec) {
			out = append(out, room)
		}
	}
	return out
}

func matchesFilter(room models.Room, spec models.FilterSpec) bool {
	if spec.HasRoomType() && !strings.Contains(room.Name, spec.RoomType) {
		return false
	}

	if spec.HasMaxGuests() {
		guests, err := strconv.Atoi(strings.TrimSpace(spec.MaxGuests))
		if err != nil || room.MaxGuests != guests {
			return false
		}
	}

	if spec.HasPriceRange() {
		low, high, err := ParsePriceRange(spec.PriceRange)
		if err != nil || room.Price < low || room.Price > high {
			return false
		}
	}

	return true
}

// ParsePriceRange splits a "low-high" token into its inclusive bounds.
func ParsePriceRange(token string) (low, high float64, err error) {
	parts := strings.SplitN(strings.TrimSpace(token), "-", 2)
	if len(parts) != 2 {
		return 0, 0, strconv.ErrSyntax
	}
	low, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	high, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return low, high, nil
}
