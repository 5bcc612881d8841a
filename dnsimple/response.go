package dnsimple

import (
	"encoding/json"
	"errors"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strconv"
	"time"
)

const (
	headerRateLimit          = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimit holds the rate limit headers verbatim. A header the server did
// not send is left empty.
type RateLimit struct {
	Limit     string
	Remaining string
	Reset     string
}

// Known reports whether all three rate limit headers were present.
func (rl RateLimit) Known() bool {
	return rl.Limit != "" && rl.Remaining != "" && rl.Reset != ""
}

// ResetAt interprets Reset as a UNIX timestamp.
func (rl RateLimit) ResetAt() (time.Time, bool) {
	secs, err := strconv.ParseInt(rl.Reset, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	return time.Unix(secs, 0), true
}

// ResponseMeta is the part of every response that doesn't depend on the payload.
type ResponseMeta struct {
	RateLimit  RateLimit
	StatusCode int
}

// Pagination is sent by list endpoints.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	PerPage      int `json:"per_page"`
	TotalEntries int `json:"total_entries"`
	TotalPages   int `json:"total_pages"`
}

// Response carries a decoded payload of type T. On a 2xx status Error is nil;
// otherwise Data is the zero value and Error holds the parsed error body, if
// it could be parsed.
type Response[T any] struct {
	ResponseMeta

	Data       T
	Pagination *Pagination
	Error      *ErrorMessage

	// HTTPResponse has its body already consumed.
	HTTPResponse *http.Response
}

// EmptyResponse is returned for requests not expected to yield a payload,
// e.g. DELETE.
type EmptyResponse struct {
	ResponseMeta

	Error        *ErrorMessage
	HTTPResponse *http.Response
}

// RawResponse is a response whose body hasn't been decoded, yet.
type RawResponse struct {
	ResponseMeta

	Body         []byte
	HTTPResponse *http.Response
}

func buildMeta(response *http.Response, logger *log.Entry) ResponseMeta {
	meta := ResponseMeta{
		RateLimit: RateLimit{
			Limit:     response.Header.Get(headerRateLimit),
			Remaining: response.Header.Get(headerRateLimitRemaining),
			Reset:     response.Header.Get(headerRateLimitReset),
		},
		StatusCode: response.StatusCode,
	}

	if !meta.RateLimit.Known() {
		logger.WithField("status", response.StatusCode).Trace("response lacks rate limit headers")
	}

	return meta
}

// decodeData decodes the usual {"data": ...} document. It's meant to wrap a
// Client call directly: decodeData[T](c.Get(...)).
func decodeData[T any](raw *RawResponse, err error) (*Response[T], error) {
	resp, err := envelope[T](raw, err)
	if err != nil || resp == nil {
		return resp, err
	}

	var document struct {
		Data       json.RawMessage `json:"data"`
		Pagination *Pagination     `json:"pagination"`
	}

	if err := json.Unmarshal(raw.Body, &document); err != nil {
		return resp, &DecodeError{StatusCode: raw.StatusCode, Err: err}
	}

	if len(document.Data) == 0 || string(document.Data) == "null" {
		return resp, &DecodeError{StatusCode: raw.StatusCode, Err: errMissingData}
	}

	if err := json.Unmarshal(document.Data, &resp.Data); err != nil {
		return resp, &DecodeError{StatusCode: raw.StatusCode, Err: err}
	}

	resp.Pagination = document.Pagination
	return resp, nil
}

// decodeBody decodes the whole body into T, for endpoints not using the
// {"data": ...} document.
func decodeBody[T any](raw *RawResponse, err error) (*Response[T], error) {
	resp, err := envelope[T](raw, err)
	if err != nil || resp == nil {
		return resp, err
	}

	if err := json.Unmarshal(raw.Body, &resp.Data); err != nil {
		return resp, &DecodeError{StatusCode: raw.StatusCode, Err: err}
	}

	return resp, nil
}

func envelope[T any](raw *RawResponse, err error) (*Response[T], error) {
	if raw == nil {
		return nil, err
	}

	resp := &Response[T]{ResponseMeta: raw.ResponseMeta, HTTPResponse: raw.HTTPResponse}
	resp.Error = errorMessageOf(err)

	return resp, err
}

var errMissingData = errors.New(`no "data" member in response document`)
