package utils

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
)

// WriteJSON encodes data and writes it with the given status code and an
// application/json content type. When encoding fails the client gets a 500
// and the wrapped error is returned.
//
//	WriteJSON(w, models.StatusResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
