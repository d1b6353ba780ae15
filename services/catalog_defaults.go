package services

import "hotel-booking/models"

// DefaultCatalog returns the built-in dataset used when no file or
// MySQL source is configured, and as the seed for an empty MySQL
// source.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Rooms: []models.Room{
			{ID: "1", Name: "Standard Room", Price: 100, MaxGuests: 2},
			{ID: "2", Name: "Standard Room", Price: 100, MaxGuests: 2},
			{ID: "3", Name: "Standard Room", Price: 100, MaxGuests: 2},
			{ID: "4", Name: "Standard Room", Price: 100, MaxGuests: 2},
			{ID: "5", Name: "Deluxe Room", Price: 150, MaxGuests: 3},
			{ID: "6", Name: "Deluxe Room", Price: 150, MaxGuests: 3},
			{ID: "7", Name: "Suite", Price: 250, MaxGuests: 4},
			{ID: "8", Name: "Suite", Price: 250, MaxGuests: 4},
			{ID: "9", Name: "VIP Suite", Price: 300, MaxGuests: 5},
			{ID: "10", Name: "Luxury Suite", Price: 400, MaxGuests: 6},
			{ID: "11", Name: "Penthouse Suite", Price: 500, MaxGuests: 8},
			{ID: "12", Name: "Presidential Suite", Price: 600, MaxGuests: 10},
			{ID: "13", Name: "Family Room", Price: 200, MaxGuests: 4},
			{ID: "14", Name: "Executive Suite", Price: 350, MaxGuests: 4},
			{ID: "15", Name: "Honeymoon Suite", Price: 450, MaxGuests: 2},
		},
		Availability: models.AvailabilityTable{
			"2024-09-17": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15"},
			"2024-09-18": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15"},
			"2024-09-19": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15"},
			"2024-09-20": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15"},
			"2024-09-21": {"1", "2", "3", "5", "6", "7", "9", "10", "13", "14"},
			"2024-09-22": {"1", "3", "4", "5", "7", "8", "9", "10", "13", "14"},
			"2024-09-23": {"1", "2", "4", "5", "6", "7", "8", "9", "13", "14", "15"},
			"2024-09-24": {"1", "2", "3", "5", "6", "7", "9", "10", "13", "15"},
			"2024-09-25": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "13", "14", "15"},
			"2024-09-26": {"1", "2", "3", "4", "5", "7", "8", "9", "10", "13", "14"},
			"2024-09-27": {"1", "2", "4", "5", "6", "8", "9", "10", "13", "15"},
			"2024-09-28": {"1", "3", "4", "5", "6", "8", "10", "13", "14", "15"},
			"2024-09-29": {"1", "2", "4", "5", "7", "8", "10", "13", "15"},
			"2024-09-30": {"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15"},
		},
		MaintenanceDates: []string{
			"2024-10-05",
			"2024-10-06",
			"2024-11-15",
		},
	}
}
