package syscfghelper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/clients/unisatclient"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/database"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/repos/journalrepo"
	"github.com/WangWilly/unisat-connector/pkgs/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PromptsWhenConfigMissing(t *testing.T) {
	t.Setenv(config.ENV_API_KEY, "")
	stateDir := t.TempDir()

	h, err := New(CliParams{
		StateDir:    stateDir,
		PromptInput: strings.NewReader("testnet\nkey-1\n\n"),
	})
	require.NoError(t, err)
	t.Cleanup(h.Close)

	assert.True(t, h.Prompted())
	assert.Equal(t, unisatclient.TESTNET, h.Config().BaseURL())
	assert.Equal(t, "key-1", h.Config().ApiKey)
	assert.Equal(t, 60, h.Config().TimeoutSeconds)
	assert.Equal(t, filepath.Join(stateDir, CLIENT_LOG_FILE), h.Config().Log.Output)
	assert.True(t, h.Config().Journal.Enabled)

	ok, err := fileExists(filepath.Join(stateDir, SYS_CONF_FILE))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = fileExists(filepath.Join(stateDir, SYS_LOG_FILE))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNew_ReadsExistingConfigAndOverrides(t *testing.T) {
	t.Setenv(config.ENV_API_KEY, "")
	stateDir := t.TempDir()
	require.NoError(t, config.WriteConfig(filepath.Join(stateDir, SYS_CONF_FILE), &config.Config{
		Endpoint: "mainnet",
		ApiKey:   "stored",
	}))

	h, err := New(CliParams{
		StateDir:      stateDir,
		Endpoint:      "whitelist",
		ParamsInQuery: true,
	})
	require.NoError(t, err)
	t.Cleanup(h.Close)

	assert.False(t, h.Prompted())
	assert.Equal(t, unisatclient.WHITELIST, h.Config().BaseURL())
	assert.Equal(t, "stored", h.Config().ApiKey)
	encoding, err := h.Config().Encoding()
	require.NoError(t, err)
	assert.Equal(t, unisatclient.PARAMS_IN_QUERY, encoding)
}

func TestGetDatabaseConfig_DefaultsToStateDir(t *testing.T) {
	h := &helper{stateDir: "/state", sysConfig: &config.Config{}}
	assert.Equal(t, database.DatabaseConfig{
		Type: database.DATABASE_TYPE_SQLITE,
		Path: filepath.Join("/state", SQLITE_DB_FILE),
	}, h.GetDatabaseConfig())

	h.sysConfig.Journal.Database = database.DatabaseConfig{Type: database.DATABASE_TYPE_POSTGRES, Host: "db"}
	assert.Equal(t, database.DATABASE_TYPE_POSTGRES, h.GetDatabaseConfig().Type)
	assert.Empty(t, h.GetDatabaseConfig().Path)
}

func TestGetMainClient_JournalsCalls(t *testing.T) {
	t.Setenv(config.ENV_API_KEY, "")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":0,"msg":"ok","data":800000}`))
	}))
	t.Cleanup(server.Close)

	stateDir := t.TempDir()
	logPath := filepath.Join(stateDir, "calls.log")
	require.NoError(t, config.WriteConfig(filepath.Join(stateDir, SYS_CONF_FILE), &config.Config{
		Endpoint: server.URL,
		Log:      config.LogConfig{Output: logPath, Level: "info"},
		Journal:  config.JournalConfig{Enabled: true},
	}))

	h, err := New(CliParams{StateDir: stateDir})
	require.NoError(t, err)
	t.Cleanup(h.Close)

	client, err := h.GetMainClient()
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, server.URL, client.BaseURL())

	resp, err := client.GetBestBlockHeight(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 800000, resp.Data().Int())

	db, err := h.GetJournalDB()
	require.NoError(t, err)
	recent, err := journalrepo.New().ListRecent(context.Background(), db, 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "/v1/indexer/brc20/bestheight", recent[0].Route)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting unisat client")
}

func TestGetMainClient_RejectsBadLogLevel(t *testing.T) {
	h := &helper{stateDir: t.TempDir(), sysConfig: &config.Config{Log: config.LogConfig{Level: "loud"}}}
	_, err := h.GetMainClient()
	assert.Error(t, err)
}
