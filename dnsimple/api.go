package dnsimple

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/Al2Klimov/FUeL.go"
	"github.com/google/go-querystring/query"
	"io"
	"net/http"
)

// Get sends a GET request for path (relative to VersionedURL). query, if not
// nil, is a struct encoded with go-querystring, e.g. *ListOptions.
func (c *Client) Get(ctx context.Context, path string, query interface{}) (*RawResponse, error) {
	return c.rest(ctx, http.MethodGet, path, query, nil)
}

// Post sends body as JSON.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*RawResponse, error) {
	return c.rest(ctx, http.MethodPost, path, nil, body)
}

// Put sends body as JSON. A nil body sends no payload.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*RawResponse, error) {
	return c.rest(ctx, http.MethodPut, path, nil, body)
}

// Delete sends a DELETE request. No response body is expected.
func (c *Client) Delete(ctx context.Context, path string) (*EmptyResponse, error) {
	raw, err := c.rest(ctx, http.MethodDelete, path, nil, nil)
	if raw == nil {
		return nil, err
	}

	empty := &EmptyResponse{ResponseMeta: raw.ResponseMeta, HTTPResponse: raw.HTTPResponse}
	empty.Error = errorMessageOf(err)

	return empty, err
}

func (c *Client) rest(ctx context.Context, method, path string, params, body interface{}) (*RawResponse, error) {
	req, err := c.newRequest(ctx, method, path, params, body)
	if err != nil {
		return nil, err
	}

	response, errDo := c.http.Do(req)
	if errDo != nil {
		return nil, &TransportError{Method: method, URL: req.URL.String(), Err: errDo}
	}
	defer func() { _ = response.Body.Close() }()

	payload, errRd := io.ReadAll(response.Body)
	if errRd != nil {
		return nil, &TransportError{Method: method, URL: req.URL.String(), Err: errRd}
	}

	raw := &RawResponse{ResponseMeta: buildMeta(response, c.logger), Body: payload, HTTPResponse: response}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return raw, normalizeError(raw)
	}

	return raw, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, params, body interface{}) (*http.Request, error) {
	uri := c.url(path)

	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return nil, fuel.AttachStackToError(err, 0)
		}

		if q := values.Encode(); q != "" {
			uri += "?" + q
		}
	}

	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)

		if err := enc.Encode(body); err != nil {
			return nil, fuel.AttachStackToError(err, 0)
		}

		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, fuel.AttachStackToError(err, 0)
	}

	token, err := c.tokens.Token()
	if err != nil {
		return nil, fuel.AttachStackToError(err, 0)
	}

	if token.AccessToken != "" {
		token.SetAuthHeader(req)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
