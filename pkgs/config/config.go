package config

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/clients/unisatclient"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/database"
	"gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// Configuration Structures
////////////////////////////////////////////////////////////////////////////////

const ENV_API_KEY = "UNISAT_API_KEY"

// param encodings as written in the config file
const (
	PARAM_ENCODING_BODY  = "body"
	PARAM_ENCODING_QUERY = "query"
)

// LogConfig selects where the client logs go
type LogConfig struct {
	Output string `yaml:"output"` // "stderr", "none" or a file path
	Level  string `yaml:"level"`
}

// JournalConfig controls the local call journal
type JournalConfig struct {
	Enabled  bool                    `yaml:"enabled"`
	Database database.DatabaseConfig `yaml:"database"`
}

// Config represents the main application configuration
type Config struct {
	Endpoint       string        `yaml:"endpoint"` // mainnet, testnet, whitelist or a url
	ApiKey         string        `yaml:"api_key"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	ParamEncoding  string        `yaml:"param_encoding"`
	Log            LogConfig     `yaml:"log"`
	Journal        JournalConfig `yaml:"journal"`
}

////////////////////////////////////////////////////////////////////////////////

// BaseURL resolves the configured endpoint name.
func (c *Config) BaseURL() string {
	return unisatclient.ResolveEndpoint(c.Endpoint)
}

func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return unisatclient.DEFAULT_TIMEOUT
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) Encoding() (unisatclient.ParamEncoding, error) {
	switch strings.ToLower(c.ParamEncoding) {
	case "", PARAM_ENCODING_BODY:
		return unisatclient.PARAMS_IN_BODY, nil
	case PARAM_ENCODING_QUERY:
		return unisatclient.PARAMS_IN_QUERY, nil
	default:
		return unisatclient.PARAMS_IN_BODY, fmt.Errorf("unknown param_encoding %q", c.ParamEncoding)
	}
}

// applyEnv lets the environment override secrets kept out of the file.
func (c *Config) applyEnv() {
	if key := os.Getenv(ENV_API_KEY); key != "" {
		c.ApiKey = key
	}
}

////////////////////////////////////////////////////////////////////////////////
// Configuration Management Functions
////////////////////////////////////////////////////////////////////////////////

// ReadConfig reads configuration from the specified path
func ReadConfig(path string) (*Config, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var result Config
	err = yaml.Unmarshal(data, &result)
	if err != nil {
		return nil, err
	}
	result.applyEnv()
	return &result, nil
}

// WriteConfig writes configuration to the specified path
func WriteConfig(path string, conf *Config) error {
	file, err := os.OpenFile(path, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	_, err = io.Copy(file, bytes.NewReader(data))
	return err
}

// PromptConfig interactively prompts user for configuration and saves it.
// defaults fills what the prompts do not ask for.
func PromptConfig(in io.Reader, saveto string, defaults Config) (*Config, error) {
	conf := defaults
	scan := bufio.NewScanner(in)

	////////////////////////////////////////////////////////////////////////////

	print("enter endpoint (mainnet/testnet/whitelist/url) [mainnet]: ")
	scan.Scan()
	conf.Endpoint = strings.TrimSpace(scan.Text())
	if conf.Endpoint == "" {
		conf.Endpoint = "mainnet"
	}

	////////////////////////////////////////////////////////////////////////////

	print("enter api key (empty for none): ")
	scan.Scan()
	conf.ApiKey = strings.TrimSpace(scan.Text())

	////////////////////////////////////////////////////////////////////////////

	print("enter request timeout in seconds [60]: ")
	scan.Scan()
	if text := strings.TrimSpace(scan.Text()); text != "" {
		timeout, err := strconv.Atoi(text)
		if err != nil {
			return nil, err
		}
		conf.TimeoutSeconds = timeout
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}

	return &conf, WriteConfig(saveto, &conf)
}
