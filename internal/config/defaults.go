// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults, used for every field no other source sets.
const (
	DefaultServerAddress        = "localhost:3000"
	DefaultServerRequestTimeout = 30 * time.Second

	DefaultAdapterAddress        = "http://localhost:3000"
	DefaultAdapterRequestTimeout = 10 * time.Second
	DefaultProbePath             = "/health"
	DefaultProbeTimeout          = 5 * time.Second

	DefaultCacheDSN    = "movie-keeper.db"
	DefaultSnapshotKey = "movies_cache"
	DefaultQueueKey    = "offline_movie_operations"

	DefaultProbeInterval       = 30 * time.Second
	DefaultNetworkPollInterval = 5 * time.Second
	DefaultReplayMaxBackoff    = 2 * time.Minute
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Cache: Cache{
				DSN:         DefaultCacheDSN,
				SnapshotKey: DefaultSnapshotKey,
				QueueKey:    DefaultQueueKey,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
			ProbePath:      DefaultProbePath,
			ProbeTimeout:   DefaultProbeTimeout,
		},
		Workers: Workers{
			ProbeInterval:       DefaultProbeInterval,
			NetworkPollInterval: DefaultNetworkPollInterval,
			ReplayMaxBackoff:    DefaultReplayMaxBackoff,
		},
	}
}
