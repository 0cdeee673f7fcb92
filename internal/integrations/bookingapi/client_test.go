package bookingapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/pkg/logger"
	"github.com/m04kA/SMC-BookingWizard/pkg/types"
)

func completeRecord() domain.BookingRecord {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	slot := types.TimeString("10:00")
	notes := "First time customer"
	return domain.BookingRecord{
		Date:     &date,
		TimeSlot: &slot,
		Service:  &domain.Service{ID: "haircut", Name: "Haircut", DurationMinutes: 30, Price: 35},
		Customer: &domain.CustomerInfo{Name: "Jane Smith", Email: "jane@example.com", Phone: "(555) 123-4567", Notes: &notes},
	}
}

func TestSubmit_Success(t *testing.T) {
	var received BookingPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL+"/", time.Second, logger.NewNop())
	require.NoError(t, client.Submit(context.Background(), completeRecord()))

	assert.Equal(t, "2026-10-20", received.Date)
	assert.Equal(t, "10:00", received.TimeSlot)
	assert.Equal(t, ServicePayload{ID: "haircut", Name: "Haircut", DurationMinutes: 30, Price: 35}, received.Service)
	assert.Equal(t, "Jane Smith", received.Customer.Name)
	require.NotNil(t, received.Customer.Notes)
	assert.Equal(t, "First time customer", *received.Customer.Notes)
}

func TestSubmit_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "slot taken", status: http.StatusConflict, body: `{"code":409,"message":"slot is taken"}`, wantErr: ErrSlotTaken, wantMsg: "slot is taken"},
		{name: "rejected", status: http.StatusBadRequest, body: "bad payload", wantErr: ErrRejected, wantMsg: "bad payload"},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, body: `{"message":"invalid phone"}`, wantErr: ErrRejected, wantMsg: "invalid phone"},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInvalidResponse, wantMsg: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			client := NewClient(server.URL, time.Second, logger.NewNop())
			err := client.Submit(context.Background(), completeRecord())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSubmit_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second, logger.NewNop())
	err := client.Submit(context.Background(), completeRecord())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSubmit_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 20*time.Millisecond, logger.NewNop())
	err := client.Submit(context.Background(), completeRecord())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSubmit_IncompleteRecord(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, logger.NewNop())
	err := client.Submit(context.Background(), domain.BookingRecord{})
	assert.ErrorIs(t, err, ErrIncompleteRecord)
}
