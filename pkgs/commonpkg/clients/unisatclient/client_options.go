package unisatclient

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Option configures a Client at construction.
type Option func(*Client)

// ParamEncoding selects where call params travel.
type ParamEncoding int

const (
	// PARAMS_IN_BODY sends params as a json object body, GET included.
	PARAMS_IN_BODY ParamEncoding = iota
	// PARAMS_IN_QUERY sends params in the query string and no body.
	PARAMS_IN_QUERY
)

func (e ParamEncoding) String() string {
	switch e {
	case PARAMS_IN_QUERY:
		return "query"
	default:
		return "body"
	}
}

////////////////////////////////////////////////////////////////////////////////

// WithLogger routes every client log line to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds a single round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = timeout
	}
}

// WithRateLimitWait sets the pause before the rate-limit retry.
func WithRateLimitWait(wait time.Duration) Option {
	return func(c *Client) {
		c.rateLimitWait = wait
	}
}

func WithParamEncoding(encoding ParamEncoding) Option {
	return func(c *Client) {
		c.paramEncoding = encoding
	}
}

// WithCallObserver registers fn to be told about every finished call.
func WithCallObserver(fn CallObserver) Option {
	return func(c *Client) {
		if fn != nil {
			c.callObservers = append(c.callObservers, fn)
		}
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.restyClient.SetTransport(transport)
	}
}
