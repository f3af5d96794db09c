package routes

import (
	"medicore/handlers"
	"medicore/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	bookings := r.Group("/api/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("/book", h.Book)
		bookings.GET("/availability", h.Availability)
		bookings.PUT("/status/:id", h.UpdateStatus)
		bookings.POST("/next", h.StartNext)
	}
}
