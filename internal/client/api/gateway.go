// Package api contains the HTTP gateway to the campus API: a request wrapper
// that attaches the stored credential and normalizes errors, plus typed calls
// for every endpoint the client uses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opencampus/campusctl/internal/logging"
)

// CredentialSource yields the current bearer token. An empty string means no
// credential is present and the Authorization header is omitted.
type CredentialSource interface {
	Load(ctx context.Context) (string, error)
}

// Gateway wraps outbound HTTP calls to the campus API. It is stateless with
// respect to the session: on a 401 it reports ErrSessionExpired and leaves
// credential teardown and redirecting to the caller.
type Gateway struct {
	baseURL string
	creds   CredentialSource
	httpc   *http.Client
	log     logging.Logger
}

func NewGateway(baseURL string, creds CredentialSource, timeout time.Duration, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

type callOptions struct {
	jsonBody    any
	formBody    url.Values
	rawBody     io.Reader
	contentType string
	skipAuth    bool
}

type CallOption func(*callOptions)

// WithJSONBody marshals v and sends it with a JSON content type.
func WithJSONBody(v any) CallOption {
	return func(o *callOptions) { o.jsonBody = v }
}

// WithFormBody sends form as application/x-www-form-urlencoded.
func WithFormBody(form url.Values) CallOption {
	return func(o *callOptions) { o.formBody = form }
}

// WithRawBody sends r as-is under the caller-supplied content type. Used for
// multipart uploads, where the runtime boundary must survive untouched.
func WithRawBody(contentType string, r io.Reader) CallOption {
	return func(o *callOptions) {
		o.rawBody = r
		o.contentType = contentType
	}
}

// WithoutAuth suppresses bearer attachment. The login call uses this, since
// it is the credential-issuing call.
func WithoutAuth() CallOption {
	return func(o *callOptions) { o.skipAuth = true }
}

// Do performs one call against the API. It returns the response body on
// success, or nil when the response is empty or not JSON. Failures map to
// ErrSessionExpired (401), *APIError (other non-2xx) or a wrapped
// ErrUnavailable (transport).
func (g *Gateway) Do(ctx context.Context, method, path string, opts ...CallOption) ([]byte, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	var body io.Reader
	var contentType string
	switch {
	case o.jsonBody != nil:
		data, err := json.Marshal(o.jsonBody)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	case o.formBody != nil:
		body = strings.NewReader(o.formBody.Encode())
		contentType = "application/x-www-form-urlencoded"
	case o.rawBody != nil:
		body = o.rawBody
		contentType = o.contentType
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	if !o.skipAuth {
		// A load failure counts as credential absence: the request goes out
		// unauthenticated and the server decides.
		token, err := g.creds.Load(ctx)
		if err != nil {
			g.log.Warn(ctx, "credential load failed", "error", err)
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := g.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrSessionExpired
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, newAPIError(resp.StatusCode, data)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		return nil, nil
	}
	return data, nil
}

// DoJSON performs a call and decodes the JSON response into out. A nil body
// (no-content or non-JSON response) leaves out untouched.
func (g *Gateway) DoJSON(ctx context.Context, method, path string, out any, opts ...CallOption) error {
	data, err := g.Do(ctx, method, path, opts...)
	if err != nil {
		return err
	}
	if data == nil || out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
