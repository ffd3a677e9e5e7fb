package handlers

import (
	"errors"
	"net/http"

	"sanocare/models"
	booking "sanocare/services/booking"
	"sanocare/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public booking flow.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler wires the public booking endpoints.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking accepts a booking submission from the public site.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	confirmed, err := h.Service.CreateBooking(input)
	if err != nil {
		status, payload := bookingErrorResponse(err)
		c.JSON(status, payload)
		return
	}

	c.JSON(http.StatusCreated, confirmed)
}

// GetBookingsByPhone returns the caller's bookings, newest first.
func (h *BookingHandler) GetBookingsByPhone(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		utils.JSONError(c, http.StatusBadRequest, "Phone number is required", "")
		return
	}

	bookings, err := h.Service.GetByPhone(phone)
	if err != nil {
		status, payload := bookingErrorResponse(err)
		c.JSON(status, payload)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetAvailableServices lists the bookable service categories with prices.
func (h *BookingHandler) GetAvailableServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": models.AvailableServices()})
}

// bookingErrorResponse maps a service error category onto an HTTP response.
// Raw backend error text never reaches the public client.
func bookingErrorResponse(err error) (int, gin.H) {
	var svcErr *booking.ServiceError
	if !errors.As(err, &svcErr) {
		return http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."}
	}
	switch svcErr.Code {
	case booking.CodeValidation:
		return http.StatusBadRequest, gin.H{"error": svcErr.Message, "code": svcErr.Code}
	case booking.CodeNetwork:
		return http.StatusGatewayTimeout, gin.H{"error": svcErr.Message, "code": svcErr.Code}
	case booking.CodeServer:
		return http.StatusBadGateway, gin.H{"error": svcErr.Message, "code": svcErr.Code}
	default:
		return http.StatusInternalServerError, gin.H{"error": svcErr.Message, "code": svcErr.Code}
	}
}
