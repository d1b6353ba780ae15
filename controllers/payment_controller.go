package controllers

import (
	"fmt"
	"net/http"
	"time"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// PaymentController collects the mock payment for a picked room. No
// real charge ever happens; a valid form just produces the ephemeral
// confirmation.
type PaymentController struct {
	Catalog   *services.Catalog
	Bookings  *services.BookingService
	Validator *services.ValidationService
}

func NewPaymentController(cat *services.Catalog, bs *services.BookingService, vs *services.ValidationService) *PaymentController {
	return &PaymentController{Catalog: cat, Bookings: bs, Validator: vs}
}

// stayForPayment re-guards the query parameters the room-options page
// put into the Book Now link. An unknown room or an invalid stay gets
// bounced back to the date page rather than rendered.
func (pc *PaymentController) stayForPayment(c *gin.Context) (models.Room, models.DateRange, bool) {
	room, ok := pc.Catalog.RoomByID(c.Query("roomId"))
	if !ok {
		return models.Room{}, models.DateRange{}, false
	}

	rng, err := pc.Validator.ValidateStay(c.Query("checkIn"), c.Query("checkOut"), time.Now(), pc.Catalog.MaintenanceDates)
	if err != nil {
		return models.Room{}, models.DateRange{}, false
	}

	return room, rng, true
}

func expiryMonths() []string {
	months := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, fmt.Sprintf("%02d", m))
	}
	return months
}

func expiryYears(now time.Time) []int {
	years := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		years = append(years, now.Year()+i)
	}
	return years
}

func (pc *PaymentController) paymentPageData(room models.Room, rng models.DateRange) gin.H {
	return gin.H{
		"Room":     room,
		"CheckIn":  utils.FormatISODate(rng.CheckIn),
		"CheckOut": utils.FormatISODate(rng.CheckOut),
		"Nights":   pc.Bookings.Cost.Nights(rng.CheckIn, rng.CheckOut),
		"Total":    pc.Bookings.Cost.Cost(room, rng.CheckIn, rng.CheckOut),
		"Months":   expiryMonths(),
		"Years":    expiryYears(time.Now()),
		"Errors":   map[string]string{},
		"Input":    services.PaymentInput{},
		"Success":  false,
	}
}

// ShowPaymentForm renders the cost summary and the payment fields.
func (pc *PaymentController) ShowPaymentForm(c *gin.Context) {
	room, rng, ok := pc.stayForPayment(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "payment.html", pc.paymentPageData(room, rng))
}

// SubmitPayment validates the payment fields all at once. Failures
// re-render the form with every field error; success renders the
// confirmation panel, which sends the user back to the start of the
// flow after two seconds.
func (pc *PaymentController) SubmitPayment(c *gin.Context) {
	room, rng, ok := pc.stayForPayment(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var in services.PaymentInput
	if err := c.ShouldBind(&in); err != nil {
		utils.GetLogger().Warn("payment form bind failed")
	}

	data := pc.paymentPageData(room, rng)

	if errs := pc.Validator.ValidatePayment(in); len(errs) > 0 {
		data["Errors"] = errs
		data["Input"] = in
		c.HTML(http.StatusOK, "payment.html", data)
		return
	}

	booking := pc.Bookings.Confirm(room, rng)
	data["Booking"] = booking
	data["Success"] = true
	c.HTML(http.StatusOK, "payment.html", data)
}
