package services

import (
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeResults(t *testing.T) {
	svc := NewBookingService()
	cat := DefaultCatalog()

	results := svc.ComputeResults(stayRange(t, "2024-09-21", "2024-09-22"), models.FilterSpec{}, cat)

	assert.Equal(t, []string{"1", "3", "5", "7", "9", "10", "13", "14"}, roomIDs(results.Available))
	assert.Equal(t, []string{"2", "4", "6", "8", "11", "12", "15"}, roomIDs(results.PartiallyUnavailable))
	assert.Empty(t, results.Err)
}

func TestComputeResultsAppliesFilterToBothSets(t *testing.T) {
	svc := NewBookingService()
	cat := DefaultCatalog()

	results := svc.ComputeResults(stayRange(t, "2024-09-21", "2024-09-22"), models.FilterSpec{RoomType: "Standard Room"}, cat)

	assert.Equal(t, []string{"1", "3"}, roomIDs(results.Available))
	assert.Equal(t, []string{"2", "4"}, roomIDs(results.PartiallyUnavailable))
}

func TestComputeResultsNoRoomsState(t *testing.T) {
	svc := NewBookingService()
	cat := DefaultCatalog()

	// A filter nothing matches: valid query, empty result, not an error.
	results := svc.ComputeResults(stayRange(t, "2024-09-17", "2024-09-18"), models.FilterSpec{PriceRange: "5000-9000"}, cat)

	assert.Empty(t, results.Available)
	assert.Equal(t, NoRoomsMessage, results.Err)
}

func TestConfirmBuildsEphemeralBooking(t *testing.T) {
	svc := NewBookingService()
	room := models.Room{ID: "7", Name: "Suite", Price: 250, MaxGuests: 4}
	rng := stayRange(t, "2024-09-17", "2024-09-20")

	booking := svc.Confirm(room, rng)

	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, "7", booking.RoomID)
	assert.Equal(t, "Suite", booking.RoomName)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 750.0, booking.TotalCost)

	// References are unique per confirmation.
	again := svc.Confirm(room, rng)
	assert.NotEqual(t, booking.Reference, again.Reference)
}

func TestPaymentURL(t *testing.T) {
	rng := stayRange(t, "2024-01-01", "2024-01-03")

	got := PaymentURL("1", rng)

	require.Equal(t, "/payment?roomId=1&checkIn=2024-01-01&checkOut=2024-01-03", got)
}
