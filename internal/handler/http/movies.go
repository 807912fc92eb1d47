// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/MKhiriev/go-movie-keeper/internal/app"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/models"
)

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.movies.ListMovies(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listMovies")
		return
	}

	_, _ = utils.WriteJSON(w, movies, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getMovie")
		return
	}

	movie, err := h.movies.GetMovie(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getMovie")
		return
	}

	_, _ = utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var fields models.MovieFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Str("func", "*Handler.createMovie").Msg(app.MsgInvalidJSON)
		_, _ = utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: []string{app.MsgInvalidJSON}}, http.StatusBadRequest)
		return
	}

	created, err := h.movies.CreateMovie(r.Context(), fields)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createMovie")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := movieIDParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateMovie")
		return
	}

	var update models.MovieUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateMovie").Msg(app.MsgInvalidJSON)
		_, _ = utils.WriteJSON(w, models.ValidationErrorsResponse{Errors: []string{app.MsgInvalidJSON}}, http.StatusBadRequest)
		return
	}

	updated, err := h.movies.UpdateMovie(r.Context(), id, update)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateMovie")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteMovie")
		return
	}

	if err = h.movies.DeleteMovie(r.Context(), id); err != nil {
		h.writeError(w, r, err, "*Handler.deleteMovie")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// movieIDParam reads the {id} path segment. Only positive integers are
// valid server ids.
func movieIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidMovieID, raw)
	}
	return id, nil
}
