package handlers

import (
	"errors"
	"net/http"

	"sanocare/models"
	"sanocare/services/admin"
	booking "sanocare/services/booking"
	"sanocare/services/dispatch"
	"sanocare/services/feed"
	"sanocare/utils"

	"github.com/gin-gonic/gin"
)

// OpsHandler serves the operations dashboard: staff auth, the live booking
// board and the dispatch lifecycle actions.
type OpsHandler struct {
	Auth     admin.AuthService
	Bookings booking.BookingService
	Dispatch dispatch.DispatchService
	Feed     *feed.Service
}

func NewOpsHandler(auth admin.AuthService, bookings booking.BookingService, disp dispatch.DispatchService, feedSvc *feed.Service) *OpsHandler {
	return &OpsHandler{Auth: auth, Bookings: bookings, Dispatch: disp, Feed: feedSvc}
}

// SignIn authenticates a dashboard user and issues a session token.
func (h *OpsHandler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", err.Error())
		return
	}

	token, err := h.Auth.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Sign-in failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CreateAdmin registers a new dashboard user; master admin only.
func (h *OpsHandler) CreateAdmin(c *gin.Context) {
	callerEmail := c.GetString("adminEmail")

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required", err.Error())
		return
	}

	account, err := h.Auth.CreateAdmin(callerEmail, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrNotMasterAdmin):
			utils.JSONError(c, http.StatusForbidden, err.Error(), "")
		case errors.Is(err, admin.ErrWeakPassword), errors.Is(err, admin.ErrEmailTaken), errors.Is(err, admin.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Could not create admin", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"admin": gin.H{"id": account.ID, "email": account.Email}})
}

// ListBookings returns the board snapshot, optionally filtered by status
// and a free-text query over name, phone and address.
func (h *OpsHandler) ListBookings(c *gin.Context) {
	opts := feed.ListOptions{
		Query: c.Query("q"),
	}
	if status := c.Query("status"); status != "" {
		s := models.BookingStatus(status)
		if !models.IsValidStatus(s) {
			utils.JSONError(c, http.StatusBadRequest, "Unknown booking status", status)
			return
		}
		opts.Status = s
	}

	bookings := h.Feed.Board.List(opts)
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":     bookings,
		"pendingCount": h.Feed.Board.PendingCount(),
	})
}

// DispatchBooking assigns a paramedic to a pending booking.
func (h *OpsHandler) DispatchBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var req struct {
		ParamedicID string `json:"paramedicId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Paramedic id is required", err.Error())
		return
	}

	result, err := h.Dispatch.Dispatch(bookingID, req.ParamedicID)
	if err != nil {
		status, payload := dispatchErrorResponse(err)
		c.JSON(status, payload)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CompleteBooking closes out a visit after the operator attests the
// wrap-up checklist.
func (h *OpsHandler) CompleteBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var req struct {
		Attested bool `json:"attested"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid completion payload", err.Error())
		return
	}

	if err := h.Dispatch.CompleteVisit(bookingID, req.Attested); err != nil {
		status, payload := dispatchErrorResponse(err)
		c.JSON(status, payload)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCompleted})
}

// CancelBooking cancels a non-terminal booking.
func (h *OpsHandler) CancelBooking(c *gin.Context) {
	if err := h.Dispatch.Cancel(c.Param("id")); err != nil {
		status, payload := dispatchErrorResponse(err)
		c.JSON(status, payload)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled})
}

// UpdateBookingStatus moves a booking along the lifecycle directly, for
// states the dedicated actions do not cover.
func (h *OpsHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("id")

	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Status is required", err.Error())
		return
	}

	if err := h.Bookings.UpdateStatus(bookingID, req.Status); err != nil {
		status, payload := bookingErrorResponse(err)
		c.JSON(status, payload)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// CompletionChecklist returns the wrap-up checklist shown before closing a
// visit.
func (h *OpsHandler) CompletionChecklist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"checklist": dispatch.CompletionChecklist})
}

func dispatchErrorResponse(err error) (int, gin.H) {
	var dispErr *dispatch.DispatchError
	if !errors.As(err, &dispErr) {
		return http.StatusInternalServerError, gin.H{"error": "Action failed. Please retry."}
	}
	payload := gin.H{"error": dispErr.Message, "code": dispErr.Code, "retryable": dispErr.Retryable()}
	switch dispErr.Code {
	case dispatch.CodeNotFound:
		return http.StatusNotFound, payload
	case dispatch.CodeConflict:
		return http.StatusConflict, payload
	case dispatch.CodeInvalid:
		return http.StatusBadRequest, payload
	default:
		return http.StatusBadGateway, payload
	}
}
