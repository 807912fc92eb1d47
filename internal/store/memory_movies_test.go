package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
)

func testFields(title string) models.MovieFields {
	return models.MovieFields{
		Title:  title,
		Year:   1999,
		Genre:  "Sci-Fi",
		Rating: 8,
		Review: "review",
		Image:  "https://example.com/" + title + ".jpg",
	}
}

func newSeededRepo(t *testing.T) MovieRepository {
	t.Helper()
	seed := []models.Movie{
		models.NewMovie("1", testFields("a")),
		models.NewMovie("5", testFields("b")),
	}
	return NewMemoryMovieRepository(seed, logger.Nop())
}

func TestMemoryMovieRepository_List(t *testing.T) {
	repo := newSeededRepo(t)

	movies, err := repo.ListMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, models.MovieID("1"), movies[0].ID)
	assert.Equal(t, models.MovieID("5"), movies[1].ID)

	// returned slice is a copy
	movies[0].Title = "changed"
	again, _ := repo.ListMovies(context.Background())
	assert.Equal(t, "a", again[0].Title)
}

func TestMemoryMovieRepository_CreateContinuesAfterSeed(t *testing.T) {
	repo := newSeededRepo(t)

	created, err := repo.CreateMovie(context.Background(), testFields("c"))
	require.NoError(t, err)
	assert.Equal(t, models.MovieID("6"), created.ID)
	assert.False(t, created.Unconfirmed)
}

func TestMemoryMovieRepository_IDsAreNeverReused(t *testing.T) {
	repo := NewMemoryMovieRepository(nil, logger.Nop())
	ctx := context.Background()

	first, err := repo.CreateMovie(ctx, testFields("x"))
	require.NoError(t, err)
	assert.Equal(t, models.MovieID("1"), first.ID)

	require.NoError(t, repo.DeleteMovie(ctx, 1))

	second, err := repo.CreateMovie(ctx, testFields("y"))
	require.NoError(t, err)
	assert.Equal(t, models.MovieID("2"), second.ID)
}

func TestMemoryMovieRepository_Get(t *testing.T) {
	repo := newSeededRepo(t)

	got, err := repo.GetMovie(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Title)

	_, err = repo.GetMovie(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMovieRepository_Update(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	fields := testFields("renamed")
	updated, err := repo.UpdateMovie(ctx, 1, fields)
	require.NoError(t, err)
	assert.Equal(t, models.MovieID("1"), updated.ID)
	assert.Equal(t, "renamed", updated.Title)

	got, _ := repo.GetMovie(ctx, 1)
	assert.Equal(t, "renamed", got.Title)

	_, err = repo.UpdateMovie(ctx, 42, fields)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryMovieRepository_DeleteIsIdempotent(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.DeleteMovie(ctx, 1))
	require.NoError(t, repo.DeleteMovie(ctx, 1))
	require.NoError(t, repo.DeleteMovie(ctx, 999))

	movies, _ := repo.ListMovies(ctx)
	require.Len(t, movies, 1)
	assert.Equal(t, models.MovieID("5"), movies[0].ID)
}

func TestMemoryMovieRepository_SkipsNonNumericSeed(t *testing.T) {
	repo := NewMemoryMovieRepository([]models.Movie{
		models.NewMovie("local-abc", testFields("bad")),
		models.NewMovie("3", testFields("ok")),
	}, logger.Nop())

	movies, _ := repo.ListMovies(context.Background())
	require.Len(t, movies, 1)
	assert.Equal(t, models.MovieID("3"), movies[0].ID)
}

func TestSeedMovies(t *testing.T) {
	movies, err := SeedMovies()
	require.NoError(t, err)
	require.NotEmpty(t, movies)

	seen := make(map[models.MovieID]bool, len(movies))
	for _, m := range movies {
		assert.False(t, m.ID.IsTemporary())
		_, err := m.ID.Int64()
		assert.NoError(t, err)
		assert.False(t, seen[m.ID], "duplicate seed id %s", m.ID)
		seen[m.ID] = true
	}
}
