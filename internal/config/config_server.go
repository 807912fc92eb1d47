// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the movie server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Version is reported by the root route.
	Version string
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// DatabaseDSN selects PostgreSQL storage when non-empty.
	DatabaseDSN string
}

// GetServerConfig builds and validates the movie server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Version:        cfg.App.Version,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DatabaseDSN:    cfg.Storage.DB.DSN,
	}

	return serverCfg, serverCfg.validate()
}
