package services

import (
	"os"
	"path/filepath"
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := DefaultCatalog()

	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Rooms, 15)
	assert.Len(t, cat.Availability, 14)
	assert.NotEmpty(t, cat.MaintenanceDates)
}

func TestValidateRejectsOrphanAvailabilityIDs(t *testing.T) {
	cat := &Catalog{
		Rooms:        []models.Room{{ID: "1", Name: "Standard Room", Price: 100, MaxGuests: 2}},
		Availability: models.AvailabilityTable{"2024-09-17": {"1", "99"}},
	}

	err := cat.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown room id "99"`)
}

func TestValidateRejectsBadRooms(t *testing.T) {
	cases := []struct {
		name  string
		rooms []models.Room
	}{
		{"empty id", []models.Room{{Name: "X", Price: 100, MaxGuests: 2}}},
		{"duplicate id", []models.Room{
			{ID: "1", Name: "X", Price: 100, MaxGuests: 2},
			{ID: "1", Name: "Y", Price: 100, MaxGuests: 2},
		}},
		{"zero price", []models.Room{{ID: "1", Name: "X", MaxGuests: 2}}},
		{"zero guests", []models.Room{{ID: "1", Name: "X", Price: 100}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := &Catalog{Rooms: tc.rooms}
			assert.Error(t, cat.Validate())
		})
	}
}

func TestValidateRejectsBadDates(t *testing.T) {
	cat := &Catalog{
		Rooms:        []models.Room{{ID: "1", Name: "X", Price: 100, MaxGuests: 2}},
		Availability: models.AvailabilityTable{"Sept 17": {"1"}},
	}
	assert.Error(t, cat.Validate())

	cat = &Catalog{
		Rooms:            []models.Room{{ID: "1", Name: "X", Price: 100, MaxGuests: 2}},
		MaintenanceDates: []string{"next tuesday"},
	}
	assert.Error(t, cat.Validate())
}

func TestLoadCatalogFileMatchesDefault(t *testing.T) {
	cat, err := LoadCatalogFile(filepath.Join("..", "data", "rooms.yaml"))

	require.NoError(t, err)
	require.NoError(t, cat.Validate())

	def := DefaultCatalog()
	assert.Equal(t, def.Rooms, cat.Rooms)
	assert.Equal(t, def.Availability, cat.Availability)
	assert.Equal(t, def.MaintenanceDates, cat.MaintenanceDates)
}

func TestLoadCatalogFileErrors(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rooms: {not: a list}"), 0o644))
	_, err = LoadCatalogFile(bad)
	assert.Error(t, err)
}

func TestServiceLoadSources(t *testing.T) {
	svc := NewCatalogService(nil)

	cat, err := svc.Load("default", "")
	require.NoError(t, err)
	assert.Len(t, cat.Rooms, 15)

	cat, err = svc.Load("file", filepath.Join("..", "data", "rooms.yaml"))
	require.NoError(t, err)
	assert.Len(t, cat.Rooms, 15)

	_, err = svc.Load("mysql", "")
	assert.Error(t, err) // no connection wired
}

func TestRoomByID(t *testing.T) {
	cat := DefaultCatalog()

	room, ok := cat.RoomByID("11")
	require.True(t, ok)
	assert.Equal(t, "Penthouse Suite", room.Name)

	_, ok = cat.RoomByID("99")
	assert.False(t, ok)
}
