package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Date string `json:"date"`
	}

	r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"date":"2026-10-20"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "2026-10-20", dst.Date)

	r = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &dst), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPut, "/", strings.NewReader("{"))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "занято"}, body)
}

func TestRespondValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationErrors(rec, "ошибка", map[string]string{"email": "Email is required"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Email is required", body.Errors["email"])
}

func TestRespondNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}
