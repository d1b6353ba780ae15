package services

import (
	"math"
	"time"

	"hotel-booking/models"
)

// CostService prices a stay.
type CostService struct{}

// Nights counts the billable nights between checkIn and checkOut,
// rounding partial days up. The absolute difference keeps a reversed
// pair from going negative; validation upstream should already have
// rejected it. Identical dates yield zero nights.
func (CostService) Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Cost is the total stay price: nightly rate times nights.
func (s CostService) Cost(room models.Room, checkIn, checkOut time.Time) float64 {
	return room.Price * float64(s.Nights(checkIn, checkOut))
}
