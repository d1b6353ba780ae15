package controllers

import (
	"net/http"
	"time"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// RoomController exposes the catalog and the availability query as
// JSON, mirroring what the pages render.
type RoomController struct {
	Catalog   *services.Catalog
	Bookings  *services.BookingService
	Validator *services.ValidationService
}

func NewRoomController(cat *services.Catalog, bs *services.BookingService, vs *services.ValidationService) *RoomController {
	return &RoomController{Catalog: cat, Bookings: bs, Validator: vs}
}

// GetRooms (GET /api/rooms) returns the full catalog.
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.Catalog.Rooms)
}

// GetAvailability (GET /api/availability) resolves and filters rooms
// for the stay in the query string. Invalid stays are a 400 with the
// validator's message; an empty result is still a 200, the no-rooms
// state rides inside the payload.
func (rc *RoomController) GetAvailability(c *gin.Context) {
	rng, err := rc.Validator.ValidateStay(c.Query("checkIn"), c.Query("checkOut"), time.Now(), rc.Catalog.MaintenanceDates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	results := rc.Bookings.ComputeResults(rng, filterSpecFromQuery(c), rc.Catalog)
	utils.JSONSuccess(c, http.StatusOK, results)
}
