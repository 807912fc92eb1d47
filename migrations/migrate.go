// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of both databases and applies it
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect selects the migration set and the goose dialect.
type Dialect string

const (
	// DialectSQLite is the client key-value store.
	DialectSQLite Dialect = "sqlite3"
	// DialectPostgres is the optional server movie table.
	DialectPostgres Dialect = "postgres"
)

var (
	//go:embed sqlite/*.sql
	sqliteMigrations embed.FS

	//go:embed postgres/*.sql
	postgresMigrations embed.FS
)

// ErrUnknownDialect is returned for a dialect without embedded migrations.
var ErrUnknownDialect = errors.New("unknown migration dialect")

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate applies every pending migration of dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	var (
		fsys embed.FS
		dir  string
	)
	switch dialect {
	case DialectSQLite:
		fsys, dir = sqliteMigrations, "sqlite"
	case DialectPostgres:
		fsys, dir = postgresMigrations, "postgres"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
