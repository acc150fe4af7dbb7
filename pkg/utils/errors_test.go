package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Not found", fmt.Errorf("debt %w", domain.ErrNotFound), http.StatusNotFound},
		{"Invalid state", fmt.Errorf("%w: locked", domain.ErrInvalidState), http.StatusBadRequest},
		{"Conflict", fmt.Errorf("%w: exists", domain.ErrConflict), http.StatusConflict},
		{"Validation", fmt.Errorf("%w: bad amount", domain.ErrValidation), http.StatusUnprocessableEntity},
		{"Unknown", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, StatusFromError(tt.err))
		})
	}
}

func TestRespondWithServiceError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithServiceError(w, fmt.Errorf("debt %w", domain.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "debt not found", resp.Message)

	w = httptest.NewRecorder()
	RespondWithServiceError(w, errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Internal server error", resp.Message)
}
