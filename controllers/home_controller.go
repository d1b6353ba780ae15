package controllers

import (
	"net/http"
	"time"

	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

// HomeController serves the date-selection entry point.
type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// ShowDateSelection renders the date form. The form submits as a GET
// to /room-options, which re-renders this page with an inline error
// when the stay fails validation.
func (h *HomeController) ShowDateSelection(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"CheckIn":  c.Query("checkIn"),
		"CheckOut": c.Query("checkOut"),
		"MinDate":  utils.FormatISODate(utils.Today(time.Now())),
	})
}
