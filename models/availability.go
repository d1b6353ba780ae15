package models

import (
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format for calendar dates everywhere in the
// app: query params, availability table keys, data files.
const DateLayout = "2006-01-02"

// AvailabilityTable maps a calendar date ("2006-01-02") to the ids of
// the rooms bookable on that date. A date missing from the table means
// no constraint: every room counts as available on it.
type AvailabilityTable map[string][]string

// AvailableOn reports whether roomID may be booked on date. Dates not
// present in the table never restrict anything.
func (t AvailabilityTable) AvailableOn(date, roomID string) bool {
	ids, ok := t[date]
	if !ok {
		return true
	}
	for _, id := range ids {
		if id == roomID {
			return true
		}
	}
	return false
}

// AvailabilityDay is the row form of one AvailabilityTable entry for
// the optional MySQL catalog source. Room ids are stored as a JSON
// array in a single column.
type AvailabilityDay struct {
	ID      uint           `json:"id" gorm:"primaryKey"`
	Date    string         `json:"date" gorm:"column:date;uniqueIndex;type:varchar(10)"`
	RoomIDs datatypes.JSON `json:"roomIds" gorm:"column:room_ids"`
}

func (AvailabilityDay) TableName() string { return "availability_days" }

// MaintenanceDate marks one hotel-wide blocked calendar date. Only the
// stay validator looks at these; the availability resolver does not.
type MaintenanceDate struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Date string `json:"date" gorm:"column:date;uniqueIndex;type:varchar(10)"`
}

func (MaintenanceDate) TableName() string { return "maintenance_dates" }

// DateRange is a validated stay: CheckIn strictly before CheckOut,
// both at UTC midnight. The stay validator enforces that before a
// range reaches the resolver.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Contains reports whether d falls inside the range, inclusive on both
// ends (a check-out day conflict still blocks the stay).
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.CheckIn) && !d.After(r.CheckOut)
}
