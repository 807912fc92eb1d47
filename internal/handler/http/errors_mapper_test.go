package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrMovieNotFound, want: http.StatusNotFound},
		{err: fmt.Errorf("get movie: %w", store.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("%w: %w", service.ErrMovieRejected, &validators.ValidationError{}), want: http.StatusBadRequest},
		{err: &validators.ValidationError{Messages: []string{"Title is required"}}, want: http.StatusBadRequest},
		{err: fmt.Errorf("%w: %q", service.ErrInvalidMovieID, "x"), want: http.StatusBadRequest},
		{err: store.ErrConstraintViolation, want: http.StatusConflict},
		{err: store.ErrStorageUnavailable, want: http.StatusServiceUnavailable},
		{err: errors.New("unknown"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestErrorBody(t *testing.T) {
	assert.Equal(t,
		models.ValidationErrorsResponse{Errors: []string{"Invalid year"}},
		errorBody(&validators.ValidationError{Messages: []string{"Invalid year"}}, http.StatusBadRequest))

	assert.Equal(t,
		models.ErrorResponse{Error: "Movie not found"},
		errorBody(store.ErrNotFound, http.StatusNotFound))

	assert.Equal(t,
		models.ErrorResponse{Error: "Service Unavailable"},
		errorBody(store.ErrStorageUnavailable, http.StatusServiceUnavailable))
}
