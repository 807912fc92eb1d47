// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate rejects merged values no binary can run with. Binary-specific
// rules live on [ServerConfig] and [ClientConfig].
func (cfg *StructuredConfig) validate() error {
	durations := []int64{
		int64(cfg.Server.RequestTimeout),
		int64(cfg.Adapter.RequestTimeout),
		int64(cfg.Adapter.ProbeTimeout),
		int64(cfg.Workers.ProbeInterval),
		int64(cfg.Workers.NetworkPollInterval),
		int64(cfg.Workers.ReplayMaxBackoff),
	}
	for _, d := range durations {
		if d < 0 {
			return ErrInvalidWorkerConfigs
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	cache := cfg.Storage.Cache
	if cache.DSN == "" || cache.SnapshotKey == "" || cache.QueueKey == "" || cache.SnapshotKey == cache.QueueKey {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ProbeTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if _, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ProbeInterval <= 0 || cfg.Workers.NetworkPollInterval <= 0 || cfg.Workers.ReplayMaxBackoff <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
