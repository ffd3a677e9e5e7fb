package paramedicRepo

import (
	"errors"

	"sanocare/models"
)

// ErrNotFound is returned when a paramedic id matches no row.
var ErrNotFound = errors.New("paramedic not found")

// ParamedicRepository defines field-staff data access.
type ParamedicRepository interface {
	// Create inserts a new paramedic record and returns the assigned id.
	Create(p *models.Paramedic) (string, error)
	// GetByID retrieves a paramedic, or ErrNotFound.
	GetByID(id string) (*models.Paramedic, error)
	// GetAll returns every paramedic, ordered by name.
	GetAll() ([]models.Paramedic, error)
	// Update modifies name, phone, specialty and duty flag.
	Update(p *models.Paramedic) error
	// SetActive toggles the on-duty flag.
	SetActive(id string, active bool) error
	// Delete removes a paramedic record.
	Delete(id string) error
}
