package tui

import "github.com/MKhiriev/go-movie-keeper/models"

type moviesLoadedMsg struct {
	movies  []models.Movie
	state   models.ConnectivityState
	pending int
}

type statusMsg struct {
	state   models.ConnectivityState
	pending int
}

type statusTickMsg struct{}

type movieSavedMsg struct {
	movie models.Movie
	err   error
}

type movieDeletedMsg struct {
	result models.DeleteResult
	err    error
}

type syncDoneMsg struct {
	report models.SyncReport
	err    error
}

type copiedMsg struct{}

type errMsg struct {
	err error
}

type clearStatusMsg struct{}
