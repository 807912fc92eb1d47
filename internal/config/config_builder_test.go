package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier configs take priority and
// later ones only fill gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", LogFile: "client.log"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "client.log", cfg.App.LogFile)
}

func TestBuild_RejectsNegativeDuration(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{ProbeInterval: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withEnv / withDotEnv ──────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "env-version"})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

func TestWithDotEnv_LoadsFileWithoutOverriding(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "from-env"})
	p := writeTempFile(t, ".env", "APP_VERSION=from-file\nAPP_LOG_FILE=dotenv.log\n")
	t.Cleanup(func() { _ = os.Unsetenv("APP_LOG_FILE") })

	b := newConfigBuilder().withDotEnv(p).withEnv()
	require.NoError(t, b.err)

	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
	assert.Equal(t, "dotenv.log", b.configs[0].App.LogFile)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-s", "http://127.0.0.1:3000"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://127.0.0.1:3000", b.configs[0].Adapter.HTTPAddress)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_AppendsConfig(t *testing.T) {
	p := writeTempFile(t, "config.json", `{"app":{"version":"9.9.9"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: p})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "9.9.9", b.configs[1].App.Version)
}

func TestWithFile_SetsErrorWhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/definitely/missing.json"})
	b.withFile()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── loadConfig ────────────────────────────────────────────────────────────────

func TestLoadConfig_Priority(t *testing.T) {
	p := writeTempFile(t, "config.yaml", `
app:
  version: "from-file"
adapter:
  probe_path: "/ping"
  request_timeout: 3s
`)
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "http://env:3000",
	})

	cfg, err := loadConfig([]string{
		"-s", "http://flag:3000",
		"-c", p,
	})
	require.NoError(t, err)

	// env beats flags
	assert.Equal(t, "http://env:3000", cfg.Adapter.HTTPAddress)
	// file fills what env and flags left empty
	assert.Equal(t, "from-file", cfg.App.Version)
	assert.Equal(t, "/ping", cfg.Adapter.ProbePath)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	// defaults fill the rest
	assert.Equal(t, DefaultProbeTimeout, cfg.Adapter.ProbeTimeout)
	assert.Equal(t, DefaultSnapshotKey, cfg.Storage.Cache.SnapshotKey)
	assert.Equal(t, DefaultQueueKey, cfg.Storage.Cache.QueueKey)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}
