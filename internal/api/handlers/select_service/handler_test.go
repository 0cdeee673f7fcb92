package select_service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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
	called bool
	gotReq models.SelectServiceRequest
	err    error
}

func (s *fakeService) SelectService(_ context.Context, id string, req models.SelectServiceRequest) (*models.WizardResponse, error) {
	s.called = true
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.WizardResponse{
		ID:     id,
		Step:   "service",
		Record: models.RecordResponse{Service: &models.ServiceResponse{ID: req.ServiceID, Name: "Haircut & Styling", DurationMinutes: 60, Price: 65}},
	}, nil
}

func serve(t *testing.T, svc WizardService, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/wizards/{wizardId}/service", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/wizards/w-1/service", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}

	rec := serve(t, svc, `{"serviceId":"haircut"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "haircut", svc.gotReq.ServiceID)

	var body models.WizardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Record.Service)
	assert.Equal(t, "haircut", body.Record.Service.ID)
}

func TestHandle_MissingServiceID(t *testing.T) {
	svc := &fakeService{}

	rec := serve(t, svc, `{"serviceId":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.called)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "broken body", body: "{", wantStatus: http.StatusBadRequest},
		{name: "unknown service", body: `{"serviceId":"42"}`, err: wizards.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "wizard not found", body: `{"serviceId":"haircut"}`, err: wizards.ErrWizardNotFound, wantStatus: http.StatusNotFound},
		{name: "busy", body: `{"serviceId":"haircut"}`, err: wizards.ErrWizardBusy, wantStatus: http.StatusConflict},
		{name: "internal", body: `{"serviceId":"haircut"}`, err: wizards.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeService{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
