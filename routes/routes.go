package routes

import (
	"time"

	"tutorhub/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the availability editor endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		if hb.NamespaceMiddleware != nil {
			api.Use(hb.NamespaceMiddleware)
		}
		api.GET("", hb.GetAvailabilityHandler)
		api.DELETE("", hb.ClearAvailabilityHandler)
		api.POST("/slots/toggle", hb.ToggleSlotHandler)
		api.DELETE("/slots/:day/:slot", hb.RemoveSlotHandler)
		api.POST("/template/weekday", hb.ApplyWeekdayTemplateHandler)
		api.GET("/month", hb.GetMonthHandler)
		api.GET("/week", hb.GetWeekHandler)
		api.GET("/week.ics", hb.GetWeekCalendarHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
