// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// movie server and the client. It is populated by merging flags, environment
// variables (optionally seeded from a .env file), an optional JSON or YAML
// file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the server database and the client local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the movie server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the movie server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the intervals of the client background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file,
	// chosen by extension. Env: CONFIG, flags: -c / -config.
	FilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is exposed by the root route and printed at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the client writes its log. Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the optional server database. Empty DSN keeps movies in memory.
	DB DB `envPrefix:"DB_"`

	// Cache holds the client local persistent store.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the server relational database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the client key-value store settings.
type Cache struct {
	// DSN is the SQLite data source. ":memory:" selects a process-local map.
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`

	// SnapshotKey is the key holding the cached movie list.
	// Env: STORAGE_CACHE_SNAPSHOT_KEY
	SnapshotKey string `env:"SNAPSHOT_KEY"`

	// QueueKey is the key holding the pending operation queue.
	// Env: STORAGE_CACHE_QUEUE_KEY
	QueueKey string `env:"QUEUE_KEY"`
}

// Server holds network and timeout settings for the movie server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the base URL of the movie server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound call except the probe.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbePath is the route used for reachability probes.
	// Env: ADAPTER_PROBE_PATH
	ProbePath string `env:"PROBE_PATH"`

	// ProbeTimeout bounds a single reachability probe.
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Workers holds the client background job settings.
type Workers struct {
	// ProbeInterval is the period of the connectivity refresh.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// NetworkPollInterval is how often the platform network signal is
	// sampled. Env: WORKERS_NETWORK_POLL_INTERVAL
	NetworkPollInterval time.Duration `env:"NETWORK_POLL_INTERVAL"`

	// ReplayMaxBackoff caps the retry delay after a failed replay.
	// Env: WORKERS_REPLAY_MAX_BACKOFF
	ReplayMaxBackoff time.Duration `env:"REPLAY_MAX_BACKOFF"`
}

// GetStructuredConfig loads, merges and validates the configuration from the
// process arguments and environment.
//
// Sources, highest priority first:
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(args).
		withFile().
		withDefaults().
		build()
}
