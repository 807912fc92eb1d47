package config

import (
	"fmt"
	"time"
)

// MemoryCacheDSN selects the in-memory key-value store instead of SQLite.
const MemoryCacheDSN = ":memory:"

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogFile is the path of the client log file.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the movie server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ProbePath is the route used for reachability probes.
	ProbePath string
	// ProbeTimeout bounds a single reachability probe.
	ProbeTimeout time.Duration
}

// ClientCache contains local persistent store settings.
type ClientCache struct {
	// DSN is the SQLite file, or [MemoryCacheDSN].
	DSN string
	// SnapshotKey holds the cached movie list.
	SnapshotKey string
	// QueueKey holds the pending operation queue.
	QueueKey string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	Cache ClientCache
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProbeInterval defines how often connectivity is refreshed.
	ProbeInterval time.Duration
	// NetworkPollInterval defines how often the network signal is sampled.
	NetworkPollInterval time.Duration
	// ReplayMaxBackoff caps the delay between replay retries.
	ReplayMaxBackoff time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ProbePath:      cfg.Adapter.ProbePath,
			ProbeTimeout:   cfg.Adapter.ProbeTimeout,
		},
		Storage: ClientStorage{
			Cache: ClientCache{
				DSN:         cfg.Storage.Cache.DSN,
				SnapshotKey: cfg.Storage.Cache.SnapshotKey,
				QueueKey:    cfg.Storage.Cache.QueueKey,
			},
		},
		Workers: ClientWorkers{
			ProbeInterval:       cfg.Workers.ProbeInterval,
			NetworkPollInterval: cfg.Workers.NetworkPollInterval,
			ReplayMaxBackoff:    cfg.Workers.ReplayMaxBackoff,
		},
	}

	return clientCfg, clientCfg.validate()
}
