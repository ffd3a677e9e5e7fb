package routes

import (
	"net/http"

	"sanocare/handlers"
	"sanocare/middleware"
	"sanocare/utils"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Booking     *handlers.BookingHandler
	Session     *handlers.SessionHandler
	Geolocation *handlers.GeolocationHandler
	Ops         *handlers.OpsHandler
	Paramedic   *handlers.ParamedicHandler
	Feed        *handlers.FeedHandler
}

// RegisterRoutes mounts the public booking surface and the token-gated
// operations dashboard.
func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	public := router.Group("/api")
	public.Use(middleware.RateLimitMiddleware())
	{
		public.POST("/bookings", h.Booking.CreateBooking)
		public.GET("/bookings/phone/:phone", h.Booking.GetBookingsByPhone)
		public.GET("/services", h.Booking.GetAvailableServices)

		public.POST("/geolocation/locality", h.Geolocation.ResolveLocality)

		public.GET("/session/:key/draft", h.Session.GetDraft)
		public.PUT("/session/:key/draft", h.Session.SaveDraft)
		public.DELETE("/session/:key/draft", h.Session.ClearDraft)
		public.GET("/session/:key/confirmation", h.Session.GetConfirmation)
		public.PUT("/session/:key/confirmation", h.Session.SaveConfirmation)

		public.POST("/ops/signin", h.Ops.SignIn)
	}

	ops := router.Group("/api/ops")
	ops.Use(middleware.OpsAuthMiddleware())
	{
		ops.GET("/bookings", h.Ops.ListBookings)
		ops.POST("/bookings/:id/dispatch", h.Ops.DispatchBooking)
		ops.POST("/bookings/:id/complete", h.Ops.CompleteBooking)
		ops.POST("/bookings/:id/cancel", h.Ops.CancelBooking)
		ops.PATCH("/bookings/:id/status", h.Ops.UpdateBookingStatus)
		ops.GET("/checklist", h.Ops.CompletionChecklist)

		ops.GET("/feed", h.Feed.Stream)

		ops.GET("/specialties", h.Paramedic.Specialties)
		ops.GET("/paramedics", h.Paramedic.List)
		ops.POST("/paramedics", h.Paramedic.Create)
		ops.PUT("/paramedics/:id", h.Paramedic.Update)
		ops.PATCH("/paramedics/:id/active", h.Paramedic.SetActive)
		ops.DELETE("/paramedics/:id", h.Paramedic.Delete)

		ops.POST("/admins", h.Ops.CreateAdmin)
	}
}
