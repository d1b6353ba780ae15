package routes

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/middleware"
	"hotel-booking/templates"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(config.AppConfig.CorsOrigins)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func pageTemplates() *template.Template {
	funcs := template.FuncMap{
		"sliceOf": func(items ...string) []string { return items },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templates.FS, "*.html"))
}

// SetupRouter wires the page controllers and the JSON API onto one
// engine.
func SetupRouter(
	hc *controllers.HomeController,
	roc *controllers.RoomOptionsController,
	pc *controllers.PaymentController,
	rc *controllers.RoomController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.SetHTMLTemplate(pageTemplates())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Booking-flow pages.
	r.GET("/", hc.ShowDateSelection)
	r.GET("/room-options", roc.ShowRoomOptions)
	r.GET("/payment", pc.ShowPaymentForm)
	r.POST("/payment", pc.SubmitPayment)

	api := r.Group("/api")
	{
		api.GET("/rooms", rc.GetRooms)
		api.GET("/availability", rc.GetAvailability)
	}

	return r
}
