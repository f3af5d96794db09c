package routes

import (
	"medicore/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every route group onto the engine.
func SetupRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler) {
	r.GET("/health", handlers.Health)
	RegisterBookingRoutes(r, bookingHandler)
}
