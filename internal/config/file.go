package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML files.
type StructuredFileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
		LogFile string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Cache struct {
			DSN         string `json:"dsn" yaml:"dsn"`
			SnapshotKey string `json:"snapshot_key" yaml:"snapshot_key"`
			QueueKey    string `json:"queue_key" yaml:"queue_key"`
		} `json:"cache,omitempty" yaml:"cache,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		ProbePath      string   `json:"probe_path" yaml:"probe_path"`
		ProbeTimeout   Duration `json:"probe_timeout" yaml:"probe_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		ProbeInterval       Duration `json:"probe_interval" yaml:"probe_interval"`
		NetworkPollInterval Duration `json:"network_poll_interval" yaml:"network_poll_interval"`
		ReplayMaxBackoff    Duration `json:"replay_max_backoff" yaml:"replay_max_backoff"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file, choosing the decoder by extension.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.NewDecoder(f).Decode(&fileCfg)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&fileCfg)
		if err == io.EOF {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fileCfg.toStructured(), nil
}

func (c *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: c.App.Version,
			LogFile: c.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: c.Storage.DB.DSN,
			},
			Cache: Cache{
				DSN:         c.Storage.Cache.DSN,
				SnapshotKey: c.Storage.Cache.SnapshotKey,
				QueueKey:    c.Storage.Cache.QueueKey,
			},
		},
		Server: Server{
			HTTPAddress:    c.Server.HTTPAddress,
			RequestTimeout: time.Duration(c.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    c.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(c.Adapter.RequestTimeout),
			ProbePath:      c.Adapter.ProbePath,
			ProbeTimeout:   time.Duration(c.Adapter.ProbeTimeout),
		},
		Workers: Workers{
			ProbeInterval:       time.Duration(c.Workers.ProbeInterval),
			NetworkPollInterval: time.Duration(c.Workers.NetworkPollInterval),
			ReplayMaxBackoff:    time.Duration(c.Workers.ReplayMaxBackoff),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if tmp, err := time.ParseDuration(value.Value); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(time.Duration(n))
	return nil
}
