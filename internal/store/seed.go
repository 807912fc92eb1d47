package store

import (
	_ "embed"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:embed seed/movies.json
var seedMovies []byte

// SeedMovies returns the catalog a fresh server starts with.
func SeedMovies() ([]models.Movie, error) {
	var movies []models.Movie
	if err := json.Unmarshal(seedMovies, &movies); err != nil {
		return nil, fmt.Errorf("decode seed movies: %w", err)
	}
	return movies, nil
}
