package controllers

import (
	"net/http"
	"time"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// RoomOptionsController renders the filtered room list for a stay.
type RoomOptionsController struct {
	Catalog   *services.Catalog
	Bookings  *services.BookingService
	Validator *services.ValidationService
}

func NewRoomOptionsController(cat *services.Catalog, bs *services.BookingService, vs *services.ValidationService) *RoomOptionsController {
	return &RoomOptionsController{Catalog: cat, Bookings: bs, Validator: vs}
}

// roomCard pairs a room with its Book Now target for the template.
type roomCard struct {
	models.Room
	BookURL string
}

func filterSpecFromQuery(c *gin.Context) models.FilterSpec {
	return models.FilterSpec{
		RoomType:   c.DefaultQuery("roomType", models.FilterAll),
		MaxGuests:  c.DefaultQuery("maxGuests", models.FilterAll),
		PriceRange: c.DefaultQuery("priceRange", models.FilterAll),
	}
}

// ShowRoomOptions validates the stay from the query string, then runs
// the resolver and filter over the catalog snapshot. Validation
// failures send the user back to the date page with the inline error;
// resolution never runs on an unvalidated range.
func (rc *RoomOptionsController) ShowRoomOptions(c *gin.Context) {
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")

	rng, err := rc.Validator.ValidateStay(checkIn, checkOut, time.Now(), rc.Catalog.MaintenanceDates)
	if err != nil {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Error":    err.Error(),
			"CheckIn":  checkIn,
			"CheckOut": checkOut,
			"MinDate":  utils.FormatISODate(utils.Today(time.Now())),
		})
		return
	}

	spec := filterSpecFromQuery(c)
	results := rc.Bookings.ComputeResults(rng, spec, rc.Catalog)

	cards := make([]roomCard, 0, len(results.Available))
	for _, room := range results.Available {
		cards = append(cards, roomCard{Room: room, BookURL: services.PaymentURL(room.ID, rng)})
	}

	c.HTML(http.StatusOK, "room-options.html", gin.H{
		"CheckIn":          checkIn,
		"CheckOut":         checkOut,
		"Spec":             spec,
		"AvailableRooms":   cards,
		"UnavailableRooms": results.PartiallyUnavailable,
		"Error":            results.Err,
	})
}
