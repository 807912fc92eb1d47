package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"

	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError converts a non-2xx reply into an error wrapping the sentinel
// for its status. A 400 carrying validation messages also wraps a
// [validators.ValidationError].
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	if status == http.StatusBadRequest {
		var verr models.ValidationErrorsResponse
		if err := json.Unmarshal(resp.Body(), &verr); err == nil && len(verr.Errors) > 0 {
			return fmt.Errorf("%w: %w", ErrBadRequest, &validators.ValidationError{Messages: verr.Errors})
		}
	}

	detail := errorDetail(resp)
	if sentinel, ok := statusSentinels[status]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}

	return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, status, detail)
}

// errorDetail prefers the "error" field of a JSON body, then the raw body,
// then the status text.
func errorDetail(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}

	return http.StatusText(resp.StatusCode())
}
