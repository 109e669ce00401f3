package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const (
	// MaxRedirects is the redirect-follow limit applied by the bundled adapters.
	MaxRedirects = 3

	// MaxResponseBytes bounds how much of a response body an adapter will
	// buffer. Graph API payloads are small; anything beyond this is a
	// misbehaving server.
	MaxResponseBytes = 10 << 20
)

// HTTPClient defines the minimal interface required by the SDK to execute
// HTTP requests. Users may inject any custom implementation (e.g., mocks or wrappers).
type HTTPClient interface {
	// Do executes an HTTP request. The implementation must respect the context.
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request is the SDK's lightweight representation of an HTTP request.
// It is built once per call and never mutated afterwards.
type Request struct {
	Method  string
	FullURL string
	Headers http.Header
	Body    io.Reader
}

// Response is the fully-buffered result of an HTTP request.
type Response struct {
	Body       []byte
	StatusCode int
	Headers    http.Header
}

type internalHTTPClientAdapter struct {
	client *http.Client
}

// NewHTTPClient wraps a standard *http.Client into an HTTPClient.
// If nil is provided, a client with the SDK's redirect policy is used.
func NewHTTPClient(stdClient *http.Client) HTTPClient {
	if stdClient == nil {
		stdClient = &http.Client{CheckRedirect: RedirectPolicy}
	}
	return &internalHTTPClientAdapter{client: stdClient}
}

// RedirectPolicy stops a redirect chain after MaxRedirects hops.
func RedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= MaxRedirects {
		return fmt.Errorf("stopped after %d redirects", MaxRedirects)
	}
	return nil
}

// Do executes the request using the underlying standard http.Client.
// The response body is read to completion (bounded) and closed on every path.
func (a *internalHTTPClientAdapter) Do(ctx context.Context, req *Request) (*Response, error) {
	stdReq, err := http.NewRequestWithContext(ctx, req.Method, req.FullURL, req.Body)
	if err != nil {
		return nil, err
	}
	if req.Headers != nil {
		stdReq.Header = req.Headers
	}

	stdResp, err := a.client.Do(stdReq)
	if err != nil {
		return nil, err
	}
	defer stdResp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(stdResp.Body, MaxResponseBytes))
	if err != nil {
		return nil, err
	}

	return &Response{
		Body:       bodyBytes,
		StatusCode: stdResp.StatusCode,
		Headers:    stdResp.Header,
	}, nil
}
