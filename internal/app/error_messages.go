// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// movie server handlers.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. Clients match on some of them, so the wording is part of the API.
package app

const (
	// MsgAPIRunning is the body of the root status route.
	MsgAPIRunning = "Movie API is running"

	// MsgInvalidJSON is returned when a request body is not valid JSON or
	// does not decode into a movie payload.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidMovieID is returned when the {id} path parameter is not a
	// positive integer.
	MsgInvalidMovieID = "Invalid movie id"

	// MsgMovieNotFound is returned when no movie has the requested id.
	MsgMovieNotFound = "Movie not found"
)
