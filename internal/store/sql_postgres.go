package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/migrations"
)

const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4

	// postgresPingTries bounds startup waiting for a database that is still
	// coming up.
	postgresPingTries = 5
)

// NewConnectPostgres opens the server database through the pgx stdlib driver.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)

	return connectPostgres(ctx, conn, backoff.NewExponentialBackOff(), log)
}

// connectPostgres pings conn until it answers. Retryable failures are
// retried with b, anything else closes conn at once.
func connectPostgres(ctx context.Context, conn *sql.DB, b backoff.BackOff, log *logger.Logger) (*DB, error) {
	classifier := NewPostgresErrorClassifier()

	ping := func() (struct{}, error) {
		err := conn.PingContext(ctx)
		if err == nil {
			return struct{}{}, nil
		}
		if classifier.Classify(err) != Retryable {
			return struct{}{}, backoff.Permanent(err)
		}
		log.Warn().Err(err).Str("func", "connectPostgres").Msg("database not ready, retrying ping")
		return struct{}{}, err
	}

	if _, err := backoff.Retry(ctx, ping, backoff.WithBackOff(b), backoff.WithMaxTries(postgresPingTries)); err != nil {
		log.Err(err).Str("func", "connectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	log.Info().Str("func", "connectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		logger:             log,
		errorClassificator: classifier,
	}, nil
}
