package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-keeper/internal/app"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrMovieRejected:  http.StatusBadRequest,
	service.ErrInvalidMovieID: http.StatusBadRequest,
	service.ErrMovieNotFound:  http.StatusNotFound,

	validators.ErrInvalidMovie: http.StatusBadRequest,

	store.ErrNotFound:            http.StatusNotFound,
	store.ErrConstraintViolation: http.StatusConflict,
	store.ErrStorageUnavailable:  http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorBody builds the JSON reply for err. Validation failures list their
// messages under "errors", everything else carries a single "error".
func errorBody(err error, status int) any {
	if messages := validators.Messages(err); len(messages) > 0 {
		return models.ValidationErrorsResponse{Errors: messages}
	}

	switch {
	case errors.Is(err, service.ErrInvalidMovieID):
		return models.ErrorResponse{Error: app.MsgInvalidMovieID}
	case status == http.StatusNotFound:
		return models.ErrorResponse{Error: app.MsgMovieNotFound}
	case status == http.StatusBadRequest:
		return models.ValidationErrorsResponse{Errors: []string{err.Error()}}
	}

	return models.ErrorResponse{Error: http.StatusText(status)}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, errorBody(err, status), status)
}
