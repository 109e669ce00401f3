package httpx

import (
	"io"
	"net/http"

	"github.com/graphkit/facebook-sdk-go/transport"
)

// RequestBuilder assembles a transport.Request from its parts. The query
// string is supplied pre-serialized so callers control parameter ordering.
type RequestBuilder struct {
	BaseURL  string
	Path     string
	Method   string
	RawQuery string
	Headers  http.Header
	Body     io.Reader
}

func NewRequestBuilder(baseURL string) *RequestBuilder {
	return &RequestBuilder{
		BaseURL: baseURL,
		Headers: make(http.Header),
	}
}

func (b *RequestBuilder) WithPath(path string) *RequestBuilder {
	b.Path = path
	return b
}

func (b *RequestBuilder) WithMethod(method string) *RequestBuilder {
	b.Method = method
	return b
}

// WithRawQuery sets the already-serialized query string, without the leading "?".
func (b *RequestBuilder) WithRawQuery(rawQuery string) *RequestBuilder {
	b.RawQuery = rawQuery
	return b
}

func (b *RequestBuilder) WithHeaders(headers http.Header) *RequestBuilder {
	b.Headers = headers
	return b
}

func (b *RequestBuilder) WithBody(body io.Reader) *RequestBuilder {
	b.Body = body
	return b
}

func (b *RequestBuilder) Build() *transport.Request {
	fullURL := b.BaseURL + b.Path
	if b.RawQuery != "" {
		fullURL += "?" + b.RawQuery
	}
	return &transport.Request{
		Method:  b.Method,
		FullURL: fullURL,
		Headers: b.Headers,
		Body:    b.Body,
	}
}
