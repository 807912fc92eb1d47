// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// Field name constants used to restrict validation to a subset of
// [models.MovieFields].
const (
	FieldTitle  = "Title"
	FieldYear   = "Year"
	FieldGenre  = "Genre"
	FieldRating = "Rating"
	FieldReview = "Review"
	FieldImage  = "Image"
)

// MinMovieYear is the earliest accepted release year.
const MinMovieYear = 1888

var requiredMessages = map[string]string{
	FieldTitle:  "Title is required",
	FieldYear:   "Year is required",
	FieldGenre:  "Genre is required",
	FieldRating: "Rating is required",
	FieldReview: "Review is required",
	FieldImage:  "Image URL is required",
}

var ruleMessages = map[string]string{
	FieldYear:   "Invalid year",
	FieldRating: "Rating must be between 1 and 10",
	FieldImage:  "Image must be a valid URL",
}

// MovieValidator checks movie payloads against the catalog rules. The same
// rules run on the server before a record is stored and on the client
// before a mutation is sent or queued.
type MovieValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewMovieValidator constructs a [MovieValidator] using the wall clock for
// the release year upper bound.
func NewMovieValidator() Validator {
	return newMovieValidator(time.Now)
}

func newMovieValidator(now func() time.Time) *MovieValidator {
	v := &MovieValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      now,
	}

	// registration only fails for empty tags or nil funcs
	_ = v.validate.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(v.now().Year())
	})
	_ = v.validate.RegisterValidation("httpprefix", func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(fl.Field().String(), "http")
	})

	return v
}

// Validate accepts models.MovieFields, models.Movie or pointers to them.
// Optional field names limit the check to those fields.
//
// A failed check returns a [*ValidationError] listing the "is required"
// messages first, then the rule messages, in field order.
func (v *MovieValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MovieFields:
		return v.validateFields(ctx, value, fields...)
	case *models.MovieFields:
		return v.validateFields(ctx, *value, fields...)
	case models.Movie:
		return v.validateFields(ctx, value.MovieFields, fields...)
	case *models.Movie:
		return v.validateFields(ctx, value.MovieFields, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *MovieValidator) validateFields(_ context.Context, movie models.MovieFields, fields ...string) error {
	for _, f := range fields {
		if _, ok := requiredMessages[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(movie)
	} else {
		err = v.validate.StructPartial(movie, fields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating movie: %w", err)
	}

	var required, rules []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			required = append(required, requiredMessages[fe.StructField()])
			continue
		}
		if msg, ok := ruleMessages[fe.StructField()]; ok {
			rules = append(rules, msg)
		}
	}

	return &ValidationError{Messages: append(required, rules...)}
}
