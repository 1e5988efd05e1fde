package unisatclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// a call makes at most this many round trips
const MAX_ATTEMPTS = 2

////////////////////////////////////////////////////////////////////////////////

// CallInfo describes one finished call.
type CallInfo struct {
	ID         string
	Method     string
	Route      string
	StatusCode int
	Attempts   int
	Duration   time.Duration
	Err        error
}

// CallObserver is told about every finished call, failed ones included.
type CallObserver func(ctx context.Context, info CallInfo)

////////////////////////////////////////////////////////////////////////////////

// Call sends params to route and returns the merged envelope. A 403
// "exceeds rate limit" answer is retried once after the rate-limit wait;
// every other non-200 answer fails with a *ClientError.
func (c *Client) Call(ctx context.Context, method string, route string, params map[string]any) (*Response, error) {
	info := CallInfo{
		ID:     uuid.NewString(),
		Method: method,
		Route:  route,
	}
	start := time.Now()

	resp, err := c.call(ctx, &info, params)

	info.Duration = time.Since(start)
	info.Err = err
	var clientErr *ClientError
	if resp != nil {
		info.StatusCode = resp.StatusCode
	} else if errors.As(err, &clientErr) {
		info.StatusCode = clientErr.StatusCode
	}
	c.notify(ctx, info)
	return resp, err
}

func (c *Client) call(ctx context.Context, info *CallInfo, params map[string]any) (*Response, error) {
	logger := c.logger.WithFields(log.Fields{
		"caller":  "Client.Call",
		"call_id": info.ID,
		"route":   info.Route,
	})

	req := c.configureRequest(logger, info.Method, info.Route, params)

	var resp *Response
	for retry := 0; ; retry++ {
		info.Attempts++
		content, err := c.sendRequest(ctx, logger, req)
		if err != nil {
			// already logged by sendRequest
			return nil, err
		}
		resp = content

		if !resp.isRateLimited() {
			break
		}
		if retry+1 >= MAX_ATTEMPTS {
			logger.Infoln("exceeds rate limit error caught again")
			return nil, c.fail(logger, newResponseError(KindRateLimited, resp))
		}

		logger.
			WithField("wait", c.rateLimitWait).
			Infoln("exceeds rate limit error caught, retrying")
		if err := c.waitForRateLimit(ctx); err != nil {
			return nil, c.fail(logger, newTransportError(err))
		}
	}

	if resp.Malformed {
		return nil, c.fail(logger, newResponseError(KindMalformedResponse, resp))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.fail(logger, newResponseError(KindUnexpectedStatus, resp))
	}
	return resp, nil
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	timer := time.NewTimer(c.rateLimitWait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) fail(logger *log.Entry, err error) error {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		logger = logger.WithField("kind", clientErr.Kind.String())
	}
	logger.Errorln(err)
	return err
}

func (c *Client) notify(ctx context.Context, info CallInfo) {
	for _, fn := range c.callObservers {
		fn(ctx, info)
	}
}
