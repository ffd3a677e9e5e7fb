package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	paramedicRepo "sanocare/database/repository/paramedic"
	"sanocare/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryParamedicRepo struct {
	rows map[string]*models.Paramedic
}

func newMemoryParamedicRepo() *memoryParamedicRepo {
	return &memoryParamedicRepo{rows: make(map[string]*models.Paramedic)}
}

func (m *memoryParamedicRepo) Create(p *models.Paramedic) (string, error) {
	p.ID = "pm-1"
	m.rows[p.ID] = p
	return p.ID, nil
}

func (m *memoryParamedicRepo) GetByID(id string) (*models.Paramedic, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, paramedicRepo.ErrNotFound
	}
	return row, nil
}

func (m *memoryParamedicRepo) GetAll() ([]models.Paramedic, error) { return nil, nil }

func (m *memoryParamedicRepo) Update(p *models.Paramedic) error {
	if _, ok := m.rows[p.ID]; !ok {
		return paramedicRepo.ErrNotFound
	}
	m.rows[p.ID] = p
	return nil
}

func (m *memoryParamedicRepo) SetActive(id string, active bool) error { return nil }
func (m *memoryParamedicRepo) Delete(id string) error                 { return nil }

func paramedicRouter(repo paramedicRepo.ParamedicRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewParamedicHandler(repo)
	router := gin.New()
	router.GET("/specialties", h.Specialties)
	router.POST("/paramedics", h.Create)
	router.PUT("/paramedics/:id", h.Update)
	return router
}

func TestCreateParamedicRejectsUnknownSpecialty(t *testing.T) {
	repo := newMemoryParamedicRepo()
	router := paramedicRouter(repo)

	body := `{"name":"Ravi","phone":"+91 91111 22222","specialty":"Surgery"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/paramedics", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.rows)
}

func TestCreateParamedicDefaultsEmptySpecialty(t *testing.T) {
	repo := newMemoryParamedicRepo()
	router := paramedicRouter(repo)

	body := `{"name":"Ravi","phone":"+91 91111 22222"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/paramedics", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, models.DefaultSpecialty, repo.rows["pm-1"].Specialty)
}

func TestUpdateParamedicEnforcesSpecialtyList(t *testing.T) {
	repo := newMemoryParamedicRepo()
	repo.rows["pm-1"] = &models.Paramedic{ID: "pm-1", Name: "Ravi", Specialty: "Wound Care"}
	router := paramedicRouter(repo)

	body := `{"name":"Ravi","phone":"+91 91111 22222","specialty":"wound care"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/paramedics/pm-1", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Wound Care", repo.rows["pm-1"].Specialty)

	body = `{"name":"Ravi","phone":"+91 91111 22222","specialty":"Elder Care"}`
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/paramedics/pm-1", strings.NewReader(body))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Elder Care", repo.rows["pm-1"].Specialty)
}

func TestSpecialtiesEndpointServesFixedList(t *testing.T) {
	router := paramedicRouter(newMemoryParamedicRepo())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/specialties", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Specialties []string `json:"specialties"`
		Default     string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, models.Specialties, payload.Specialties)
	assert.Equal(t, models.DefaultSpecialty, payload.Default)
}
