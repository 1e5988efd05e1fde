package unisatclient

import (
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////

const VERSION = "0.1.0"

// base urls
const (
	MAINNET   = "https://open-api.unisat.io"
	TESTNET   = "https://open-api-testnet.unisat.io"
	WHITELIST = "https://open-api-s1.unisat.io"
)

// ResolveEndpoint maps "mainnet", "testnet" and "whitelist" to their base
// url. Anything else is taken as a custom base url; empty means mainnet.
func ResolveEndpoint(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mainnet":
		return MAINNET
	case "testnet":
		return TESTNET
	case "whitelist":
		return WHITELIST
	default:
		return strings.TrimSpace(name)
	}
}

const (
	DEFAULT_TIMEOUT         = 60 * time.Second
	DEFAULT_RATE_LIMIT_WAIT = 1 * time.Second
)

////////////////////////////////////////////////////////////////////////////////

// Client talks to the UniSat Developer Service. It holds no per-call state
// and may be shared between goroutines.
type Client struct {
	restyClient    *resty.Client
	baseURL        string
	bearer         string
	logger         *log.Logger
	rateLimitWait  time.Duration
	paramEncoding  ParamEncoding
	callObservers  []CallObserver
	requestTimeout time.Duration
}

// New creates a client for endpoint (MAINNET, TESTNET, WHITELIST or a custom
// base url). An empty apiKey sends no Authorization header.
func New(endpoint string, apiKey string, opts ...Option) *Client {
	c := &Client{
		restyClient:    resty.New(),
		baseURL:        strings.TrimRight(endpoint, "/"),
		bearer:         apiKey,
		logger:         newDefaultLogger(),
		rateLimitWait:  DEFAULT_RATE_LIMIT_WAIT,
		paramEncoding:  PARAMS_IN_BODY,
		requestTimeout: DEFAULT_TIMEOUT,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.restyClient.SetTimeout(c.requestTimeout)
	c.restyClient.SetLogger(c.logger)
	// the service expects params as a json body even on GET
	c.restyClient.SetAllowGetMethodPayload(true)
	c.restyClient.SetPreRequestHook(stripInferredContentType)

	c.logger.Infoln("starting unisat client")
	return c
}

func newDefaultLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.InfoLevel)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

////////////////////////////////////////////////////////////////////////////////

// BaseURL returns the base url every route is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Logger returns the logger the client writes to.
func (c *Client) Logger() *log.Logger {
	return c.logger
}

// Log writes message at level through the client logger. Levels outside
// fatal..debug fall back to info; fatal is logged without exiting.
func (c *Client) Log(level log.Level, message string) {
	if level > log.DebugLevel || level < log.FatalLevel {
		c.logger.Warnln("Client.Log() called with unknown level, using info")
		level = log.InfoLevel
	}
	c.logger.Logln(level, message)
}

// Close releases idle connections. The client must not be used afterwards.
func (c *Client) Close() error {
	c.logger.Infoln("stopping unisat client")
	c.restyClient.GetClient().CloseIdleConnections()
	return nil
}
