package handlers

import (
	"errors"
	"net/http"

	paramedicRepo "sanocare/database/repository/paramedic"
	"sanocare/models"
	"sanocare/utils"

	"github.com/gin-gonic/gin"
)

// ParamedicHandler manages the field-staff roster from the dashboard.
type ParamedicHandler struct {
	Repo paramedicRepo.ParamedicRepository
}

func NewParamedicHandler(repo paramedicRepo.ParamedicRepository) *ParamedicHandler {
	return &ParamedicHandler{Repo: repo}
}

type paramedicRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Specialty string `json:"specialty"`
	IsActive  *bool  `json:"isActive"`
}

// Specialties serves the fixed specialty list for the roster form.
func (h *ParamedicHandler) Specialties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"specialties": models.Specialties,
		"default":     models.DefaultSpecialty,
	})
}

// Create adds a paramedic to the roster. New staff default to on duty.
func (h *ParamedicHandler) Create(c *gin.Context) {
	var req paramedicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Name and phone are required", err.Error())
		return
	}
	specialty, ok := models.NormalizeSpecialty(req.Specialty)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Unknown specialty", req.Specialty)
		return
	}

	p := &models.Paramedic{
		Name:      req.Name,
		Phone:     req.Phone,
		Specialty: specialty,
		IsActive:  true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	id, err := h.Repo.Create(p)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not create paramedic", err.Error())
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, gin.H{"paramedic": p})
}

// List returns the full roster, ordered by name.
func (h *ParamedicHandler) List(c *gin.Context) {
	paramedics, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not load paramedics", err.Error())
		return
	}
	if paramedics == nil {
		paramedics = []models.Paramedic{}
	}
	c.JSON(http.StatusOK, gin.H{"paramedics": paramedics})
}

// Update edits a roster entry.
func (h *ParamedicHandler) Update(c *gin.Context) {
	var req paramedicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Name and phone are required", err.Error())
		return
	}
	specialty, ok := models.NormalizeSpecialty(req.Specialty)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Unknown specialty", req.Specialty)
		return
	}

	p := &models.Paramedic{
		ID:        c.Param("id"),
		Name:      req.Name,
		Phone:     req.Phone,
		Specialty: specialty,
		IsActive:  true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := h.Repo.Update(p); err != nil {
		if errors.Is(err, paramedicRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Paramedic not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Could not update paramedic", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"paramedic": p})
}

// SetActive toggles the on-duty flag without touching the rest of the
// record.
func (h *ParamedicHandler) SetActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "isActive is required", err.Error())
		return
	}

	if err := h.Repo.SetActive(c.Param("id"), *req.IsActive); err != nil {
		if errors.Is(err, paramedicRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Paramedic not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Could not update duty status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isActive": *req.IsActive})
}

// Delete removes a roster entry.
func (h *ParamedicHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		if errors.Is(err, paramedicRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Paramedic not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Could not delete paramedic", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
