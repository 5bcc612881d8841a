package dnsimple

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorMessage is an error document as sent by the API. OAuth endpoints use
// Code and Description, the others Message and, for validation failures, Errors.
type ErrorMessage struct {
	Code        string              `json:"error,omitempty"`
	Description string              `json:"error_description,omitempty"`
	Message     string              `json:"message,omitempty"`
	Errors      map[string][]string `json:"errors,omitempty"`
}

func (em *ErrorMessage) String() string {
	var parts []string

	for _, s := range []string{em.Code, em.Description, em.Message} {
		if s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, ": ")
}

// APIError is returned for a non-2xx response with a well-formed error body.
type APIError struct {
	ResponseMeta

	Message ErrorMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dnsimple: HTTP status %d: %s", e.StatusCode, e.Message.String())
}

// MalformedErrorBodyError is returned for a non-2xx response whose body isn't
// an error document.
type MalformedErrorBodyError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *MalformedErrorBodyError) Error() string {
	return fmt.Sprintf("dnsimple: HTTP status %d with malformed error body: %v", e.StatusCode, e.Err)
}

func (e *MalformedErrorBodyError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a 2xx response doesn't match the expected payload.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("dnsimple: can't decode response (HTTP status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError means no response was received at all.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("dnsimple: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

var errNotAnErrorDocument = errors.New("no error, error_description or message member")

func normalizeError(raw *RawResponse) error {
	msg, err := parseErrorMessage(raw.Body)
	if err != nil {
		return &MalformedErrorBodyError{StatusCode: raw.StatusCode, Body: string(raw.Body), Err: err}
	}

	return &APIError{ResponseMeta: raw.ResponseMeta, Message: *msg}
}

// parseErrorMessage accepts either a plain JSON error document or one
// preceded by a blank-line-separated preamble.
func parseErrorMessage(body []byte) (*ErrorMessage, error) {
	msg, err := unmarshalErrorMessage(body)
	if err == nil {
		return msg, nil
	}

	normalized := bytes.TrimSpace(bytes.ReplaceAll(body, []byte("\r\n"), []byte("\n")))
	if idx := bytes.LastIndex(normalized, []byte("\n\n")); idx >= 0 {
		if msg, errTail := unmarshalErrorMessage(normalized[idx+2:]); errTail == nil {
			return msg, nil
		}
	}

	return nil, err
}

func unmarshalErrorMessage(doc []byte) (*ErrorMessage, error) {
	msg := &ErrorMessage{}
	if err := json.Unmarshal(bytes.TrimSpace(doc), msg); err != nil {
		return nil, err
	}

	if msg.Code == "" && msg.Description == "" && msg.Message == "" {
		return nil, errNotAnErrorDocument
	}

	return msg, nil
}

func errorMessageOf(err error) *ErrorMessage {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &apiErr.Message
	}

	return nil
}
