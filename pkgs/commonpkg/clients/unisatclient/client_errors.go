package unisatclient

import (
	"errors"
	"fmt"
	"strconv"
)

// Error definitions
var (
	ErrTransport         = errors.New("transport failure")
	ErrRateLimited       = errors.New("rate limit exceeded")
	ErrMalformedResponse = errors.New("malformed response")
	ErrUnexpectedStatus  = errors.New("unexpected http status")

	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrPathArguments   = errors.New("wrong number of path arguments")
)

const (
	NO_MESSAGE_PLACEHOLDER     = "[no message found]"
	NO_STATUS_CODE_PLACEHOLDER = "[no http status code found]"
)

////////////////////////////////////////////////////////////////////////////////

// ErrorKind tells where a ClientError came from.
type ErrorKind int

const (
	KindTransport ErrorKind = iota + 1
	KindRateLimited
	KindMalformedResponse
	KindUnexpectedStatus
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRateLimited:
		return "rate_limited"
	case KindMalformedResponse:
		return "malformed_response"
	case KindUnexpectedStatus:
		return "unexpected_status"
	default:
		return "unknown"
	}
}

////////////////////////////////////////////////////////////////////////////////

// ClientError is the only error a call returns once a request was built.
// Response is nil for transport failures.
type ClientError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Response   *Response
	Err        error
}

func (e *ClientError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = NO_MESSAGE_PLACEHOLDER
	}
	code := NO_STATUS_CODE_PLACEHOLDER
	if e.StatusCode != 0 {
		code = strconv.Itoa(e.StatusCode)
	}
	return fmt.Sprintf("%s (http status code: %s)", msg, code)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *ClientError) Is(target error) bool {
	switch e.Kind {
	case KindTransport:
		return target == ErrTransport
	case KindRateLimited:
		return target == ErrRateLimited
	case KindMalformedResponse:
		return target == ErrMalformedResponse
	case KindUnexpectedStatus:
		return target == ErrUnexpectedStatus
	}
	return false
}

func newResponseError(kind ErrorKind, resp *Response) *ClientError {
	return &ClientError{
		Kind:       kind,
		StatusCode: resp.StatusCode,
		Message:    resp.Msg(),
		Response:   resp,
	}
}

func newTransportError(err error) *ClientError {
	return &ClientError{
		Kind: KindTransport,
		Err:  err,
	}
}
