package unisatclient

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// sendRequest performs one round trip. Any body is turned into a Response;
// only a missing response is an error.
func (c *Client) sendRequest(ctx context.Context, logger *log.Entry, req *request) (*Response, error) {
	logger.
		WithFields(log.Fields{"method": req.method, "url": req.url, "body": req.body}).
		Debugln("[CALL] sendRequest")

	r := c.restyClient.R().
		SetContext(ctx).
		SetHeaders(req.headers)
	if req.hasBody() {
		r.SetBody(req.body)
	}
	if len(req.query) > 0 {
		r.SetQueryParams(req.query)
	}

	resp, err := r.Execute(req.method, req.url)
	if err != nil {
		logger.
			WithError(err).
			Errorln("the http request failed before a response arrived, e.g. incorrect url, no internet access or unavailable remote service")
		return nil, newTransportError(err)
	}

	content := newResponse(resp.StatusCode(), resp.Body())
	if content.Malformed {
		logger.
			WithField("status", content.StatusCode).
			Debugln("response body is not a json object")
	}
	logger.
		WithField("content", string(content.Bytes())).
		Debugln("[RETURN sendRequest]")
	return content, nil
}
