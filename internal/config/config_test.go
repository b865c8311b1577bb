package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesCompactJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)

	require.NoError(t, Save(path, Settings{URI: "ws://localhost:1234"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"uri":"ws://localhost:1234"}`, string(data))
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, Save(path, Settings{URI: "ws://10.0.0.5:9000/feed"}))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ws://10.0.0.5:9000/feed", s.URI)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
	assert.Empty(t, s.URI)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("{uri:"), 0o644))

	s, err := Load(path)
	assert.Error(t, err)
	assert.Empty(t, s.URI)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MONITOR_CONFIG", "MONITOR_URI", "MONITOR_FULLSCREEN", "LOG_LEVEL", "LOG_JSON",
		"WSTEST_PORT", "WSTEST_NATS_URL", "WSTEST_NATS_SUBJECT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadMonitorOptionsDefaults(t *testing.T) {
	clearEnv(t)

	opts := LoadMonitorOptions()
	assert.Equal(t, DefaultFileName, opts.ConfigPath)
	assert.Empty(t, opts.URI)
	assert.False(t, opts.Fullscreen)
	assert.Equal(t, "info", opts.LogLevel)
}

func TestLoadMonitorOptionsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONITOR_CONFIG", "/tmp/monitor.json")
	t.Setenv("MONITOR_FULLSCREEN", "true")
	t.Setenv("LOG_JSON", "1")

	opts := LoadMonitorOptions()
	assert.Equal(t, "/tmp/monitor.json", opts.ConfigPath)
	assert.True(t, opts.Fullscreen)
	assert.True(t, opts.LogJSON)
}

func TestLoadTesterOptions(t *testing.T) {
	clearEnv(t)

	opts := LoadTesterOptions()
	assert.Equal(t, DefaultPort, opts.Port)
	assert.Empty(t, opts.NATSURL)
	assert.Equal(t, DefaultNATSSubject, opts.NATSSubject)

	t.Setenv("WSTEST_PORT", "9001")
	t.Setenv("WSTEST_NATS_URL", "nats://127.0.0.1:4222")
	opts = LoadTesterOptions()
	assert.Equal(t, 9001, opts.Port)
	assert.Equal(t, "nats://127.0.0.1:4222", opts.NATSURL)

	t.Setenv("WSTEST_PORT", "not-a-port")
	assert.Equal(t, DefaultPort, LoadTesterOptions().Port)
}
