package create_wizard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
	"github.com/m04kA/SMC-BookingWizard/pkg/logger"
)

type fakeService struct {
	err error
}

func (s *fakeService) Create(context.Context) (*models.WizardResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.WizardResponse{ID: "w-1", Step: "date", ReachableSteps: []string{"date"}}, nil
}

func TestHandle_Created(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/wizards", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.WizardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "w-1", body.ID)
	assert.Equal(t, "date", body.Step)
}

func TestHandle_TooManyWizards(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{err: wizards.ErrTooManyWizards}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/wizards", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
