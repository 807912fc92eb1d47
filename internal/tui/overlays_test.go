package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-movie-keeper/models"
)

func TestDeleteConfirm(t *testing.T) {
	movie := models.Movie{ID: "7", MovieFields: models.MovieFields{Title: "Heat"}}

	tests := []struct {
		name        string
		state       models.ConnectivityState
		wantOffline bool
	}{
		{name: "online", state: online(), wantOffline: false},
		{name: "server down", state: models.ConnectivityState{NetworkReachable: true}, wantOffline: true},
		{name: "no network", state: models.ConnectivityState{}, wantOffline: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newDeleteConfirm(movie, tt.state)

			assert.Equal(t, models.MovieID("7"), m.target())
			assert.Contains(t, m.View(), `Delete "Heat"?`)
			if tt.wantOffline {
				assert.Contains(t, m.View(), "next sync")
			} else {
				assert.NotContains(t, m.View(), "next sync")
			}
		})
	}
}

func TestErrorOverlay(t *testing.T) {
	assert.False(t, errorOverlayModel{}.visible())

	m := errorOverlayModel{title: "Save failed", message: "boom"}
	assert.True(t, m.visible())
	assert.Contains(t, m.View(), "Save failed")
	assert.Contains(t, m.View(), "boom")

	// без заголовка используется "Error"
	assert.Contains(t, errorOverlayModel{message: "boom"}.View(), "Error")
}
