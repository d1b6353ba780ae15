package services

import (
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAllPassesEverything(t *testing.T) {
	var svc FilterService
	cat := DefaultCatalog()

	for _, spec := range []models.FilterSpec{
		{},
		{RoomType: models.FilterAll, MaxGuests: models.FilterAll, PriceRange: models.FilterAll},
	} {
		out := svc.Filter(cat.Rooms, spec)
		assert.Equal(t, cat.Rooms, out)
	}
}

func TestFilterRoomTypeMatchesBySubstring(t *testing.T) {
	var svc FilterService
	cat := DefaultCatalog()

	out := svc.Filter(cat.Rooms, models.FilterSpec{RoomType: "Suite"})

	// "Suite" hits every suite variant, not only the exact name.
	assert.Equal(t, []string{"7", "8", "9", "10", "11", "12", "14", "15"}, roomIDs(out))
}

func TestFilterMaxGuestsIsExactMatch(t *testing.T) {
	var svc FilterService
	cat := DefaultCatalog()

	out := svc.Filter(cat.Rooms, models.FilterSpec{MaxGuests: "3"})

	// Exact-count semantics: the 2-guest rooms do not pass a filter of 3.
	require.NotEmpty(t, out)
	for _, room := range out {
		assert.Equal(t, 3, room.MaxGuests)
	}
	assert.Equal(t, []string{"5", "6"}, roomIDs(out))
}

func TestFilterPriceRangeBoundsAreInclusive(t *testing.T) {
	var svc FilterService
	rooms := []models.Room{
		{ID: "a", Name: "A", Price: 100, MaxGuests: 2},
		{ID: "b", Name: "B", Price: 101, MaxGuests: 2},
		{ID: "c", Name: "C", Price: 200, MaxGuests: 2},
		{ID: "d", Name: "D", Price: 201, MaxGuests: 2},
	}

	out := svc.Filter(rooms, models.FilterSpec{PriceRange: "101-200"})

	assert.Equal(t, []string{"b", "c"}, roomIDs(out))
}

func TestFilterPredicatesCombineWithAnd(t *testing.T) {
	var svc FilterService
	cat := DefaultCatalog()

	out := svc.Filter(cat.Rooms, models.FilterSpec{
		RoomType:   "Suite",
		MaxGuests:  "4",
		PriceRange: "201-300",
	})

	assert.Equal(t, []string{"7", "8"}, roomIDs(out))
}

func TestFilterIsIdempotent(t *testing.T) {
	var svc FilterService
	cat := DefaultCatalog()
	spec := models.FilterSpec{RoomType: "Room", PriceRange: "0-200"}

	once := svc.Filter(cat.Rooms, spec)
	twice := svc.Filter(once, spec)

	assert.Equal(t, once, twice)
}

func TestFilterEmptyInput(t *testing.T) {
	var svc FilterService

	out := svc.Filter(nil, models.FilterSpec{RoomType: "Suite"})

	assert.Empty(t, out)
}

func TestFilterMalformedTokensMatchNothing(t *testing.T) {
	var svc FilterService
	cat := DefaultCatalog()

	assert.Empty(t, svc.Filter(cat.Rooms, models.FilterSpec{MaxGuests: "many"}))
	assert.Empty(t, svc.Filter(cat.Rooms, models.FilterSpec{PriceRange: "cheap"}))
}

func TestParsePriceRange(t *testing.T) {
	low, high, err := ParsePriceRange("101-200")
	require.NoError(t, err)
	assert.Equal(t, 101.0, low)
	assert.Equal(t, 200.0, high)

	_, _, err = ParsePriceRange("nope")
	assert.Error(t, err)
}
