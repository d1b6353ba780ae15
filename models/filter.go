package models

// FilterAll is the sentinel a filter dimension carries when the user
// left it unconstrained.
const FilterAll = "All"

// FilterSpec narrows a room list. Each field is either FilterAll (or
// empty, treated the same) or a raw token from the filter selects:
// a room-type substring, a guest count, or a "low-high" price range.
type FilterSpec struct {
	RoomType   string `json:"roomType" form:"roomType"`
	MaxGuests  string `json:"maxGuests" form:"maxGuests"`
	PriceRange string `json:"priceRange" form:"priceRange"`
}

func (s FilterSpec) typeAll(v string) bool { return v == "" || v == FilterAll }

// HasRoomType reports whether the room-type dimension is constrained.
func (s FilterSpec) HasRoomType() bool { return !s.typeAll(s.RoomType) }

// HasMaxGuests reports whether the max-guests dimension is constrained.
func (s FilterSpec) HasMaxGuests() bool { return !s.typeAll(s.MaxGuests) }

// HasPriceRange reports whether the price-range dimension is constrained.
func (s FilterSpec) HasPriceRange() bool { return !s.typeAll(s.PriceRange) }
