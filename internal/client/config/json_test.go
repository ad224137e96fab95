package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysNamedFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "http://cfg:3000",
		"request_timeout": "45s"
	}`)

	origArgs := os.Args
	os.Args = []string{"testbin", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://cfg:3000", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	// fields absent from the file keep their defaults
	assert.Equal(t, "ideatrack.db", cfg.DatabaseDSN)
	assert.Equal(t, 2*time.Second, cfg.RetryWait)
}

func TestParseJson_NoFlag_Noop(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://127.0.0.1:3000", cfg.APIBaseURL)
}

func TestParseJson_MalformedFile_Panics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	origArgs := os.Args
	os.Args = []string{"testbin", "-config", path}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}
