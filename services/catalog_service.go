package services

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"hotel-booking/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Catalog is the immutable startup snapshot every request works from:
// the room list, the per-date availability table and the hotel-wide
// maintenance dates. Nothing mutates it after Load.
type Catalog struct {
	Rooms            []models.Room
	Availability     models.AvailabilityTable
	MaintenanceDates []string
}

// RoomByID returns the catalog entry for id, or false when unknown.
func (c *Catalog) RoomByID(id string) (models.Room, bool) {
	for _, r := range c.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.Room{}, false
}

// Validate enforces the catalog invariants: positive price and
// occupancy, unique ids, parseable dates and no availability entry
// referencing a room that does not exist.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Rooms))
	for _, r := range c.Rooms {
		if r.ID == "" {
			return fmt.Errorf("room with empty id")
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate room id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Price <= 0 {
			return fmt.Errorf("room %q: price must be positive", r.ID)
		}
		if r.MaxGuests <= 0 {
			return fmt.Errorf("room %q: maxGuests must be positive", r.ID)
		}
	}

	for date, ids := range c.Availability {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return fmt.Errorf("availability date %q: %w", date, err)
		}
		for _, id := range ids {
			if !seen[id] {
				return fmt.Errorf("availability for %s references unknown room id %q", date, id)
			}
		}
	}

	for _, date := range c.MaintenanceDates {
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			return fmt.Errorf("maintenance date %q: %w", date, err)
		}
	}

	return nil
}

// catalogFile is the YAML shape of a catalog data file.
type catalogFile struct {
	Rooms []struct {
		ID        string  `yaml:"id"`
		Name      string  `yaml:"name"`
		Price     float64 `yaml:"price"`
		MaxGuests int     `yaml:"maxGuests"`
	} `yaml:"rooms"`
	Availability     map[string][]string `yaml:"availability"`
	MaintenanceDates []string            `yaml:"maintenanceDates"`
}

// CatalogService loads the catalog snapshot from one of the configured
// sources. DB is only set when the MySQL source is in use.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// Load builds the snapshot for the configured source ("mysql", "file"
// or "default") and validates it before handing it out.
func (s *CatalogService) Load(source, file string) (*Catalog, error) {
	var (
		cat *Catalog
		err error
	)

	switch source {
	case "mysql":
		cat, err = s.loadFromDB()
	case "file":
		cat, err = LoadCatalogFile(file)
	default:
		cat = DefaultCatalog()
	}
	if err != nil {
		return nil, err
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return cat, nil
}

// LoadCatalogFile parses a YAML catalog data file.
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	cat := &Catalog{
		Rooms:            make([]models.Room, 0, len(f.Rooms)),
		Availability:     models.AvailabilityTable{},
		MaintenanceDates: f.MaintenanceDates,
	}
	for _, r := range f.Rooms {
		cat.Rooms = append(cat.Rooms, models.Room{
			ID:        r.ID,
			Name:      r.Name,
			Price:     r.Price,
			MaxGuests: r.MaxGuests,
		})
	}
	for date, ids := range f.Availability {
		cat.Availability[date] = ids
	}
	return cat, nil
}

func (s *CatalogService) loadFromDB() (*Catalog, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("mysql catalog source requested but no database connection")
	}

	if err := s.seedIfEmpty(); err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.DB.Order("CAST(id AS UNSIGNED), id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	var days []models.AvailabilityDay
	if err := s.DB.Find(&days).Error; err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}

	table := models.AvailabilityTable{}
	for _, day := range days {
		var ids []string
		if err := json.Unmarshal(day.RoomIDs, &ids); err != nil {
			return nil, fmt.Errorf("availability row %s: %w", day.Date, err)
		}
		table[day.Date] = ids
	}

	var maint []models.MaintenanceDate
	if err := s.DB.Find(&maint).Error; err != nil {
		return nil, fmt.Errorf("load maintenance dates: %w", err)
	}
	dates := make([]string, 0, len(maint))
	for _, m := range maint {
		dates = append(dates, m.Date)
	}

	return &Catalog{Rooms: rooms, Availability: table, MaintenanceDates: dates}, nil
}

// seedIfEmpty fills an empty MySQL source with the default dataset, so
// a fresh database serves the same rooms the built-in catalog does.
func (s *CatalogService) seedIfEmpty() error {
	var roomCount int64
	if err := s.DB.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if roomCount > 0 {
		return nil
	}

	seed := DefaultCatalog()

	if err := s.DB.Create(&seed.Rooms).Error; err != nil {
		return fmt.Errorf("seed rooms: %w", err)
	}

	days := make([]models.AvailabilityDay, 0, len(seed.Availability))
	for date, ids := range seed.Availability {
		raw, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("seed availability %s: %w", date, err)
		}
		days = append(days, models.AvailabilityDay{Date: date, RoomIDs: raw})
	}
	if err := s.DB.Create(&days).Error; err != nil {
		return fmt.Errorf("seed availability: %w", err)
	}

	maint := make([]models.MaintenanceDate, 0, len(seed.MaintenanceDates))
	for _, date := range seed.MaintenanceDates {
		maint = append(maint, models.MaintenanceDate{Date: date})
	}
	if len(maint) > 0 {
		if err := s.DB.Create(&maint).Error; err != nil {
			return fmt.Errorf("seed maintenance dates: %w", err)
		}
	}

	return nil
}
