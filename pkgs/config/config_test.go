package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/clients/unisatclient"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
endpoint: testnet
api_key: file-key
timeout_seconds: 5
param_encoding: query
log:
  output: none
  level: debug
journal:
  enabled: true
  database:
    type: sqlite
    path: /tmp/journal.db
`

func TestReadConfig(t *testing.T) {
	t.Setenv(ENV_API_KEY, "")
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0600))

	conf, err := ReadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, unisatclient.TESTNET, conf.BaseURL())
	assert.Equal(t, "file-key", conf.ApiKey)
	assert.Equal(t, 5*time.Second, conf.Timeout())
	assert.Equal(t, "debug", conf.Log.Level)
	assert.True(t, conf.Journal.Enabled)
	assert.Equal(t, database.DATABASE_TYPE_SQLITE, conf.Journal.Database.Type)

	encoding, err := conf.Encoding()
	require.NoError(t, err)
	assert.Equal(t, unisatclient.PARAMS_IN_QUERY, encoding)
}

func TestReadConfig_EnvOverridesApiKey(t *testing.T) {
	t.Setenv(ENV_API_KEY, "env-key")
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0600))

	conf, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", conf.ApiKey)
}

func TestReadConfig_Missing(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, os.IsNotExist(err))
}

func TestConfigDefaults(t *testing.T) {
	conf := &Config{}
	assert.Equal(t, unisatclient.MAINNET, conf.BaseURL())
	assert.Equal(t, unisatclient.DEFAULT_TIMEOUT, conf.Timeout())

	encoding, err := conf.Encoding()
	require.NoError(t, err)
	assert.Equal(t, unisatclient.PARAMS_IN_BODY, encoding)

	conf.ParamEncoding = "form"
	_, err = conf.Encoding()
	assert.Error(t, err)
}

func TestPromptConfig(t *testing.T) {
	t.Setenv(ENV_API_KEY, "")
	path := filepath.Join(t.TempDir(), "conf.yaml")
	defaults := Config{Log: LogConfig{Output: "stderr", Level: "info"}}

	conf, err := PromptConfig(strings.NewReader("\nmy-key\n30\n"), path, defaults)
	require.NoError(t, err)
	assert.Equal(t, "mainnet", conf.Endpoint)
	assert.Equal(t, "my-key", conf.ApiKey)
	assert.Equal(t, 30, conf.TimeoutSeconds)
	assert.Equal(t, "stderr", conf.Log.Output)

	saved, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, conf, saved)
}
