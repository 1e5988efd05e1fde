package unisatclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

// header keys
const (
	HEADER_ACCEPT        = "Accept"
	HEADER_CLIENT        = "X-Client"
	HEADER_AUTHORIZATION = "Authorization"
	HEADER_CONTENT_TYPE  = "Content-Type"
)

const (
	MIME_JSON         = "application/json"
	MIME_JSON_UTF8    = "application/json;charset=utf-8"
	CLIENT_IDENTIFIER = "unisat-connector v" + VERSION
)

////////////////////////////////////////////////////////////////////////////////

// request is everything needed to put one call on the wire.
type request struct {
	method  string
	url     string
	headers map[string]string
	body    string
	query   map[string]string
}

func (r *request) hasBody() bool {
	return r.body != ""
}

// configureRequest builds the request for route. It does not fail: params
// are stringified before encoding so marshalling a map[string]string can't.
func (c *Client) configureRequest(logger *log.Entry, method string, route string, params map[string]any) *request {
	logger.
		WithFields(log.Fields{"method": method, "route": route, "params": params}).
		Debugln("[CALL] configureRequest")

	req := &request{
		method: method,
		url:    c.baseURL + route,
		headers: map[string]string{
			HEADER_ACCEPT: MIME_JSON,
			HEADER_CLIENT: CLIENT_IDENTIFIER,
		},
	}
	if c.bearer != "" {
		req.headers[HEADER_AUTHORIZATION] = "Bearer " + c.bearer
	}
	if method == http.MethodPost {
		req.headers[HEADER_CONTENT_TYPE] = MIME_JSON_UTF8
	}

	if stringified := stringifyParams(params); stringified != nil {
		if c.paramEncoding == PARAMS_IN_QUERY {
			req.query = stringified
		} else {
			data, _ := json.Marshal(stringified)
			req.body = string(data)
		}
	}

	logger.
		WithFields(log.Fields{
			"method":  req.method,
			"url":     req.url,
			"headers": redactHeaders(req.headers),
			"body":    req.body,
			"query":   req.query,
		}).
		Debugln("[RETURN configureRequest]")
	return req
}

// stringifyParams returns nil for an empty mapping so that no body is sent.
func stringifyParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = fmt.Sprint(v)
	}
	return out
}

func redactHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if k == HEADER_AUTHORIZATION {
			v = "Bearer ***"
		}
		out[k] = v
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////

// stripInferredContentType drops the Content-Type resty guesses for a body;
// only POST declares one.
func stripInferredContentType(_ *resty.Client, req *http.Request) error {
	if req.Method != http.MethodPost {
		req.Header.Del(HEADER_CONTENT_TYPE)
	}
	return nil
}
