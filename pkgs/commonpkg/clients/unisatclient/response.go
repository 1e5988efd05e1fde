package unisatclient

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const HTTP_STATUS_CODE_KEY = "http_status_code"

// envelope used when the body is not a json object
const (
	MALFORMED_CODE = -500
	MALFORMED_MSG  = "Client not receive json !"
)

const RATE_LIMIT_MSG = "exceeds rate limit"

////////////////////////////////////////////////////////////////////////////////

// Response is the body the service returned with the http status merged in
// under HTTP_STATUS_CODE_KEY. Blockchain payloads are left as raw json.
type Response struct {
	StatusCode int
	// Malformed is set when the body was not a json object; the envelope
	// then carries MALFORMED_CODE and MALFORMED_MSG.
	Malformed bool
	// RawBody is the body exactly as received.
	RawBody []byte

	envelope []byte
}

func newResponse(statusCode int, body []byte) *Response {
	resp := &Response{StatusCode: statusCode, RawBody: body}

	trimmed := bytes.TrimSpace(body)
	if !gjson.ValidBytes(trimmed) || !gjson.ParseBytes(trimmed).IsObject() {
		resp.Malformed = true
		trimmed = []byte(`{}`)
		trimmed, _ = sjson.SetBytes(trimmed, "code", MALFORMED_CODE)
		trimmed, _ = sjson.SetBytes(trimmed, "msg", MALFORMED_MSG)
	}

	// the real status wins over a body field of the same name
	envelope, err := sjson.SetBytes(trimmed, HTTP_STATUS_CODE_KEY, statusCode)
	if err != nil {
		envelope = trimmed
	}
	resp.envelope = envelope
	return resp
}

////////////////////////////////////////////////////////////////////////////////

// Bytes returns the merged envelope as json.
func (r *Response) Bytes() []byte {
	return r.envelope
}

// Map decodes the merged envelope. Numbers are json.Number so that large
// heights and amounts survive.
func (r *Response) Map() map[string]any {
	out := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(r.envelope))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return map[string]any{HTTP_STATUS_CODE_KEY: json.Number(strconv.Itoa(r.StatusCode))}
	}
	return out
}

// Decode unmarshals the merged envelope into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.envelope, v)
}

// Get reads a gjson path from the envelope, e.g. "data.detail.0.ticker".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.envelope, path)
}

func (r *Response) Msg() string {
	return r.Get("msg").String()
}

func (r *Response) Code() int64 {
	return r.Get("code").Int()
}

func (r *Response) Data() gjson.Result {
	return r.Get("data")
}

func (r *Response) MarshalJSON() ([]byte, error) {
	if r.envelope == nil {
		return []byte("null"), nil
	}
	return r.envelope, nil
}

func (r *Response) isRateLimited() bool {
	msg := r.Get("msg")
	return r.StatusCode == 403 && msg.Type == gjson.String && msg.Str == RATE_LIMIT_MSG
}
