package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
)

const moviesTable = "movies"

var movieColumns = []string{"id", "title", "year", "genre", "rating", "review", "image"}

// movieRepository is the PostgreSQL-backed implementation of [MovieRepository].
// Identifiers come from the BIGSERIAL sequence of the movies table, so a
// deleted id is never handed out again.
type movieRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewMovieRepository constructs a [MovieRepository] backed by db.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger,
	}
}

func (r *movieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(movieColumns...).
		From(moviesTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error querying movies")
		return nil, r.db.wrapError(err, "list movies")
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error scanning movie")
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(err, "list movies")
	}

	return movies, nil
}

func (r *movieRepository) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(movieColumns...).
		From(moviesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Movie{}, fmt.Errorf("build get query: %w", err)
	}

	movie, err := scanMovie(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Movie{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.GetMovie").Int64("id", id).Msg("error getting movie")
		return models.Movie{}, r.db.wrapError(err, "get movie")
	}

	return movie, nil
}

func (r *movieRepository) CreateMovie(ctx context.Context, movie models.MovieFields) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(moviesTable).
		Columns("title", "year", "genre", "rating", "review", "image").
		Values(movie.Title, movie.Year, movie.Genre, movie.Rating, movie.Review, movie.Image).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Movie{}, fmt.Errorf("build create query: %w", err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*movieRepository.CreateMovie").Msg("error inserting movie")
		return models.Movie{}, r.db.wrapError(err, "create movie")
	}

	return models.NewMovie(models.MovieIDFromInt(id), movie), nil
}

func (r *movieRepository) UpdateMovie(ctx context.Context, id int64, movie models.MovieFields) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(moviesTable).
		Set("title", movie.Title).
		Set("year", movie.Year).
		Set("genre", movie.Genre).
		Set("rating", movie.Rating).
		Set("review", movie.Review).
		Set("image", movie.Image).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(movieColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Movie{}, fmt.Errorf("build update query: %w", err)
	}

	updated, err := scanMovie(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Movie{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.UpdateMovie").Int64("id", id).Msg("error updating movie")
		return models.Movie{}, r.db.wrapError(err, "update movie")
	}

	return updated, nil
}

func (r *movieRepository) DeleteMovie(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(moviesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*movieRepository.DeleteMovie").Int64("id", id).Msg("error deleting movie")
		return r.db.wrapError(err, "delete movie")
	}

	return nil
}

// Seed inserts movies when the table is empty. Seed identifiers are ignored;
// the sequence assigns fresh ones in slice order.
func (r *movieRepository) Seed(ctx context.Context, movies []models.Movie) error {
	query, args, err := r.builder.Select("COUNT(*)").From(moviesTable).ToSql()
	if err != nil {
		return fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return r.db.wrapError(err, "count movies")
	}
	if count > 0 || len(movies) == 0 {
		return nil
	}

	insert := r.builder.
		Insert(moviesTable).
		Columns("title", "year", "genre", "rating", "review", "image")
	for _, m := range movies {
		insert = insert.Values(m.Title, m.Year, m.Genre, m.Rating, m.Review, m.Image)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("build seed query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return r.db.wrapError(err, "seed movies")
	}

	r.logger.Info().Str("func", "*movieRepository.Seed").Int("count", len(movies)).Msg("movies table seeded")
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var (
		id    int64
		movie models.Movie
	)
	err := row.Scan(&id, &movie.Title, &movie.Year, &movie.Genre, &movie.Rating, &movie.Review, &movie.Image)
	if err != nil {
		return models.Movie{}, err
	}
	movie.ID = models.MovieIDFromInt(id)

	return movie, nil
}
