// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TemporaryIDPrefix marks identifiers generated on the client for records the
// server has not confirmed yet.
const TemporaryIDPrefix = "local-"

// MovieID identifies a movie record.
//
// Server-assigned identifiers are positive integers and travel over the wire
// as JSON numbers. Identifiers generated locally while offline carry the
// [TemporaryIDPrefix] and travel as JSON strings. Both forms decode into the
// same type so a snapshot can hold confirmed and unconfirmed records side by
// side.
type MovieID string

// NewTemporaryMovieID returns a fresh locally generated identifier.
func NewTemporaryMovieID() MovieID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return MovieID(TemporaryIDPrefix + id.String())
}

// MovieIDFromInt converts a server-assigned numeric identifier.
func MovieIDFromInt(id int64) MovieID {
	return MovieID(strconv.FormatInt(id, 10))
}

// IsTemporary reports whether the identifier was generated locally.
func (id MovieID) IsTemporary() bool {
	return strings.HasPrefix(string(id), TemporaryIDPrefix)
}

// Int64 returns the numeric form of a server-assigned identifier.
func (id MovieID) Int64() (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("movie id %q is not numeric: %w", string(id), err)
	}
	return n, nil
}

func (id MovieID) String() string {
	return string(id)
}

// MarshalJSON writes numeric identifiers as JSON numbers and everything else
// as JSON strings.
func (id MovieID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (id *MovieID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = MovieID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid movie id %s: %w", string(b), err)
	}
	*id = MovieID(n.String())
	return nil
}

// MovieFields is the editable part of a movie record. It is the body of
// create and update requests and the payload of queued operations.
type MovieFields struct {
	Title  string `json:"title" validate:"required"`
	Year   int    `json:"year" validate:"required,min=1888,notfuture"`
	Genre  string `json:"genre" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=10"`
	Review string `json:"review" validate:"required"`
	Image  string `json:"image" validate:"required,httpprefix"`
}

// Movie is a single catalog entry.
//
// Unconfirmed is set on records that were changed locally and are waiting
// for a pending operation to be replayed against the server.
type Movie struct {
	ID MovieID `json:"id"`
	MovieFields
	Unconfirmed bool `json:"unconfirmed,omitempty"`
}

// NewMovie builds a movie record from an identifier and its fields.
func NewMovie(id MovieID, fields MovieFields) Movie {
	return Movie{ID: id, MovieFields: fields}
}

// MovieUpdate is a partial update accepted by the server. Nil fields keep
// their stored values.
type MovieUpdate struct {
	Title  *string `json:"title,omitempty"`
	Year   *int    `json:"year,omitempty"`
	Genre  *string `json:"genre,omitempty"`
	Rating *int    `json:"rating,omitempty"`
	Review *string `json:"review,omitempty"`
	Image  *string `json:"image,omitempty"`
}

// Apply merges the non-nil fields of u over fields and returns the result.
func (u MovieUpdate) Apply(fields MovieFields) MovieFields {
	if u.Title != nil {
		fields.Title = *u.Title
	}
	if u.Year != nil {
		fields.Year = *u.Year
	}
	if u.Genre != nil {
		fields.Genre = *u.Genre
	}
	if u.Rating != nil {
		fields.Rating = *u.Rating
	}
	if u.Review != nil {
		fields.Review = *u.Review
	}
	if u.Image != nil {
		fields.Image = *u.Image
	}
	return fields
}

// DeleteResult reports the outcome of a delete issued through the client.
type DeleteResult struct {
	ID        MovieID `json:"id"`
	Confirmed bool    `json:"confirmed"`
}
