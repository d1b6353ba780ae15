package services

import (
	"time"

	"hotel-booking/models"
)

// AvailabilityService decides which rooms can host a stay. It only
// reads the catalog snapshot, so a zero value is ready to use.
type AvailabilityService struct{}

// Resolve splits the catalog into rooms free on every constrained date
// of the range and rooms with at least one conflict. The two slices
// are complementary: a room missing from available always lands in
// partiallyUnavailable, even when none of its listed dates fall inside
// the range on an available day. Both preserve catalog order.
//
// A date inside the range but absent from the table imposes no
// constraint. Range bounds are inclusive on both ends. Callers must
// not pass an unvalidated range; the stay validator runs first.
func (AvailabilityService) Resolve(rng models.DateRange, rooms []models.Room, table models.AvailabilityTable) (available, partiallyUnavailable []models.Room) {
	for _, room := range rooms {
		if fullyAvailable(rng, room.ID, table) {
			available = append(available, room)
		} else {
			partiallyUnavailable = append(partiallyUnavailable, room)
		}
	}
	return available, partiallyUnavailable
}

func fullyAvailable(rng models.DateRange, roomID string, table models.AvailabilityTable) bool {
	for date := range table {
		d, err := time.Parse(models.DateLayout, date)
		if err != nil {
			// Unparseable keys are screened out at catalog load.
			continue
		}
		if !rng.Contains(d) {
			continue
		}
		if !table.AvailableOn(date, roomID) {
			return false
		}
	}
	return true
}
