package routes

import (
	"net/http"

	"solmar/handlers"
	"solmar/middleware"
	"solmar/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, catalogHandler *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", catalogHandler.GetAvailableServices)
		api.GET("/services/:id", catalogHandler.GetServiceByID)
	}
}

// RegisterBookingRoutes registers all endpoints for the booking pipeline.
// Starting a session is open; everything touching an existing session
// requires the token issued at start.
func RegisterBookingRoutes(r *gin.Engine, bookingHandler *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", bookingHandler.StartSession)

		guarded := booking.Group("")
		guarded.Use(middleware.SessionTokenMiddleware())
		guarded.PATCH("/session/:sessionID/fields", bookingHandler.UpdateFields)
		guarded.POST("/session/:sessionID/validate", bookingHandler.Validate)
		guarded.POST("/session/:sessionID/client-info", bookingHandler.AttachClientInfo)
		guarded.POST("/session/:sessionID/confirm", bookingHandler.Confirm)
		guarded.DELETE("/session/:sessionID", bookingHandler.CancelSession)
	}
}

// RegisterReservationRoutes registers reservation lookup endpoints.
func RegisterReservationRoutes(r *gin.Engine, reservationHandler *handlers.ReservationHandler) {
	api := r.Group("/api/reservations")
	{
		api.GET("/:id", reservationHandler.GetReservationByID)
	}
}

// RegisterRoutes wires CORS, health and all route groups.
func RegisterRoutes(
	r *gin.Engine,
	catalogHandler *handlers.CatalogHandler,
	bookingHandler *handlers.BookingHandler,
	reservationHandler *handlers.ReservationHandler,
) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	RegisterCatalogRoutes(r, catalogHandler)
	RegisterBookingRoutes(r, bookingHandler)
	RegisterReservationRoutes(r, reservationHandler)
}
