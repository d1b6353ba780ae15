package models

// Room is one bookable unit in the catalog. The catalog is loaded once
// at startup and never mutated afterwards, so there are no lifecycle
// columns here; gorm tags exist only for the optional MySQL catalog source.
type Room struct {
	ID        string  `json:"id" gorm:"column:id;primaryKey;type:varchar(32)"`
	Name      string  `json:"name" gorm:"column:name;type:varchar(100)"`
	Price     float64 `json:"price" gorm:"column:price"`
	MaxGuests int     `json:"maxGuests" gorm:"column:max_guests"`
}

func (Room) TableName() string { return "rooms" }
