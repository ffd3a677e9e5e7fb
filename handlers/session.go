package handlers

import (
	"net/http"

	"sanocare/models"
	"sanocare/services/session"
	"sanocare/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler persists booking drafts and confirmation receipts so a
// visitor can resume a half-filled form from another tab or after a reload.
type SessionHandler struct {
	Store *session.Store
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{Store: store}
}

// GetDraft returns the saved draft for a session key, or an empty draft.
func (h *SessionHandler) GetDraft(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, "Session key is required", "")
		return
	}
	draft, err := h.Store.LoadDraft(c.Request.Context(), key)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not load draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveDraft stores the current form state. Location readings and in-flight
// flags are stripped before persisting.
func (h *SessionHandler) SaveDraft(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, "Session key is required", "")
		return
	}
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid draft payload", err.Error())
		return
	}
	if err := h.Store.SaveDraft(c.Request.Context(), key, draft); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not save draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// ClearDraft removes the saved draft, typically after a successful booking.
func (h *SessionHandler) ClearDraft(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, "Session key is required", "")
		return
	}
	if err := h.Store.ClearDraft(c.Request.Context(), key); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not clear draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// GetConfirmation returns the last confirmed booking for the session if it
// is still within the confirmation window; expired receipts are discarded.
func (h *SessionHandler) GetConfirmation(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, "Session key is required", "")
		return
	}
	confirmed, err := h.Store.LoadConfirmation(c.Request.Context(), key)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not load confirmation", err.Error())
		return
	}
	if confirmed == nil {
		c.JSON(http.StatusOK, gin.H{"confirmation": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmation": confirmed})
}

// SaveConfirmation stores a confirmation receipt for the session.
func (h *SessionHandler) SaveConfirmation(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		utils.JSONError(c, http.StatusBadRequest, "Session key is required", "")
		return
	}
	var confirmed models.ConfirmedBooking
	if err := c.ShouldBindJSON(&confirmed); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid confirmation payload", err.Error())
		return
	}
	if err := h.Store.SaveConfirmation(c.Request.Context(), key, confirmed); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not save confirmation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}
