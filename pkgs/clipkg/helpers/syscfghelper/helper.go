package syscfghelper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/database"
	"github.com/WangWilly/unisat-connector/pkgs/config"
	"github.com/WangWilly/unisat-connector/pkgs/logging"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

type CliParams struct {
	IsDebug       bool
	ConfOverWrite bool

	// optional overrides
	StateDir      string
	ConfPath      string
	Endpoint      string
	ParamsInQuery bool

	// answers for the config prompt; stdin when nil
	PromptInput io.Reader
}

type helper struct {
	cliParams CliParams
	stateDir  string

	logFile *os.File
	db      *sqlx.DB

	sysConfig *config.Config
	prompted  bool
}

func New(cliParams CliParams) (*helper, error) {
	h := &helper{
		cliParams: cliParams,
	}

	if err := h.init(); err != nil {
		h.Close()
		return nil, err
	}

	return h, nil
}

func (h *helper) init() error {
	h.stateDir = h.cliParams.StateDir
	if h.stateDir == "" {
		home, err := getHomePath()
		if err != nil {
			return err
		}
		h.stateDir = filepath.Join(home, SYS_STATE_DIR)
	}
	if err := os.MkdirAll(h.stateDir, 0755); err != nil {
		return fmt.Errorf("failed to make app dir: %w", err)
	}

	////////////////////////////////////////////////////////////////////////////

	logPath := filepath.Join(h.stateDir, SYS_LOG_FILE)
	logFile, err := os.OpenFile(logPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	logging.InitLogger(h.cliParams.IsDebug, logFile)
	h.logFile = logFile

	////////////////////////////////////////////////////////////////////////////

	confPath := h.cliParams.ConfPath
	if confPath == "" {
		confPath = filepath.Join(h.stateDir, SYS_CONF_FILE)
	}
	if ok, err := fileExists(confPath); err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	} else if !ok || h.cliParams.ConfOverWrite {
		in := h.cliParams.PromptInput
		if in == nil {
			in = os.Stdin
		}
		conf, err := config.PromptConfig(in, confPath, h.defaultConfig())
		if err != nil {
			return fmt.Errorf("failed to prompt config: %w", err)
		}
		h.sysConfig = conf
		h.prompted = true
	} else {
		conf, err := config.ReadConfig(confPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		h.sysConfig = conf
	}

	////////////////////////////////////////////////////////////////////////////

	if endpoint := strings.TrimSpace(h.cliParams.Endpoint); endpoint != "" {
		h.sysConfig.Endpoint = endpoint
	}
	if h.cliParams.ParamsInQuery {
		h.sysConfig.ParamEncoding = config.PARAM_ENCODING_QUERY
	}
	log.WithField("caller", "syscfghelper.init").Debugln("config is loaded from", confPath)
	return nil
}

// defaultConfig fills what the prompt does not ask for.
func (h *helper) defaultConfig() config.Config {
	return config.Config{
		Endpoint:       "mainnet",
		TimeoutSeconds: 60,
		ParamEncoding:  config.PARAM_ENCODING_BODY,
		Log: config.LogConfig{
			Output: filepath.Join(h.stateDir, CLIENT_LOG_FILE),
			Level:  log.InfoLevel.String(),
		},
		Journal: config.JournalConfig{
			Enabled: true,
			Database: database.DatabaseConfig{
				Type: database.DATABASE_TYPE_SQLITE,
				Path: filepath.Join(h.stateDir, SQLITE_DB_FILE),
			},
		},
	}
}

////////////////////////////////////////////////////////////////////////////////

func (h *helper) Config() *config.Config {
	return h.sysConfig
}

// Prompted reports whether this run wrote a fresh config.
func (h *helper) Prompted() bool {
	return h.prompted
}

func (h *helper) StateDir() string {
	return h.stateDir
}

////////////////////////////////////////////////////////////////////////////////

func (h *helper) Close() {
	if h.db != nil {
		h.db.Close()
		h.db = nil
	}
	if h.logFile != nil {
		h.logFile.Close()
		h.logFile = nil
	}
}
