package go_back

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/api/handlers"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
	"github.com/m04kA/SMC-BookingWizard/internal/service/wizards/models"
	"github.com/m04kA/SMC-BookingWizard/pkg/logger"
)

type fakeService struct {
	gotID string
	moved bool
	step  string
	err   error
}

func (s *fakeService) Back(_ context.Context, id string) (*models.StepResponse, error) {
	s.gotID = id
	if s.err != nil {
		return nil, s.err
	}
	return &models.StepResponse{Advanced: s.moved, Wizard: models.WizardResponse{ID: id, Step: s.step}}, nil
}

func serve(t *testing.T, svc WizardService) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/wizards/{wizardId}/back", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizards/w-1/back", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	tests := []struct {
		name     string
		moved    bool
		step     string
		wantStep string
	}{
		{name: "moved back", moved: true, step: "time", wantStep: "time"},
		{name: "already on first step", moved: false, step: "date", wantStep: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{moved: tt.moved, step: tt.step}

			rec := serve(t, svc)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "w-1", svc.gotID)

			var body models.StepResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.moved, body.Advanced)
			assert.Equal(t, tt.wantStep, body.Wizard.Step)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: wizards.ErrWizardNotFound, wantStatus: http.StatusNotFound},
		{name: "busy", err: wizards.ErrWizardBusy, wantStatus: http.StatusConflict},
		{name: "internal", err: wizards.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeService{err: tt.err})
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
