package service

import (
	"slices"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// Helpers patching a cached snapshot. They run inside MovieCache.Mutate.

func indexOfMovie(movies []models.Movie, id models.MovieID) int {
	return slices.IndexFunc(movies, func(m models.Movie) bool { return m.ID == id })
}

func findMovie(movies []models.Movie, id models.MovieID) (models.Movie, bool) {
	if i := indexOfMovie(movies, id); i >= 0 {
		return movies[i], true
	}
	return models.Movie{}, false
}

// putMovie replaces the record with id, or appends movie when absent.
func putMovie(movies []models.Movie, id models.MovieID, movie models.Movie) []models.Movie {
	if i := indexOfMovie(movies, id); i >= 0 {
		movies[i] = movie
		return movies
	}
	return append(movies, movie)
}

func removeMovie(movies []models.Movie, id models.MovieID) []models.Movie {
	return slices.DeleteFunc(movies, func(m models.Movie) bool { return m.ID == id })
}

func removeOperation(queue []models.PendingOperation, opID string) []models.PendingOperation {
	return slices.DeleteFunc(queue, func(op models.PendingOperation) bool { return op.ID == opID })
}

// remapTarget points every queued operation aimed at from to to.
func remapTarget(queue []models.PendingOperation, from, to models.MovieID) {
	for i := range queue {
		if queue[i].TargetID == from {
			queue[i].TargetID = to
		}
	}
}

func hasQueued(queue []models.PendingOperation, kind models.OperationKind, target models.MovieID) bool {
	return slices.ContainsFunc(queue, func(op models.PendingOperation) bool {
		return op.Kind == kind && op.TargetID == target
	})
}

// hasQueuedFor reports whether any queued operation targets id.
func hasQueuedFor(queue []models.PendingOperation, id models.MovieID) bool {
	return slices.ContainsFunc(queue, func(op models.PendingOperation) bool {
		return op.TargetID == id
	})
}

// rebase applies queued operations on top of a snapshot fresh from the
// server so that local changes stay visible until they are replayed.
func rebase(movies []models.Movie, queue []models.PendingOperation) []models.Movie {
	for _, op := range queue {
		switch op.Kind {
		case models.OperationCreate:
			if op.Payload == nil || indexOfMovie(movies, op.TempID) >= 0 {
				continue
			}
			movies = append(movies, unconfirmed(op.TempID, *op.Payload))
		case models.OperationUpdate:
			if op.Payload == nil {
				continue
			}
			if i := indexOfMovie(movies, op.TargetID); i >= 0 {
				movies[i] = unconfirmed(op.TargetID, *op.Payload)
			}
		case models.OperationDelete:
			movies = removeMovie(movies, op.TargetID)
		}
	}
	return movies
}

// confirm stores the server's version of a record that was known locally as
// localID. The record keeps its local fields and stays unconfirmed while an
// UPDATE for it is still queued. A record with a queued DELETE stays absent.
func confirm(state []models.Movie, queue []models.PendingOperation, localID models.MovieID, server models.Movie) []models.Movie {
	server.Unconfirmed = false

	if hasQueued(queue, models.OperationDelete, server.ID) {
		state = removeMovie(state, localID)
		return removeMovie(state, server.ID)
	}

	i := indexOfMovie(state, localID)
	if i >= 0 && hasQueued(queue, models.OperationUpdate, server.ID) {
		local := state[i]
		local.ID = server.ID
		state[i] = local
		return state
	}
	if i >= 0 {
		state[i] = server
		return state
	}

	return putMovie(state, server.ID, server)
}

func unconfirmed(id models.MovieID, fields models.MovieFields) models.Movie {
	m := models.NewMovie(id, fields)
	m.Unconfirmed = true
	return m
}
