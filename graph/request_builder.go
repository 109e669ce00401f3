package graph

import (
	"github.com/graphkit/facebook-sdk-go/internal/httpx"
	"github.com/graphkit/facebook-sdk-go/transport"
)

// requestBuilder assembles requests against the Graph host. No network I/O
// happens here; Build is pure data assembly.
type requestBuilder struct {
	inner *httpx.RequestBuilder
	token AccessToken
	args  []Argument
}

func newRequestBuilder() *requestBuilder {
	return &requestBuilder{
		inner: httpx.NewRequestBuilder(defaultBaseURL),
	}
}

func (b *requestBuilder) WithMethod(method string) *requestBuilder {
	b.inner = b.inner.WithMethod(method)
	return b
}

func (b *requestBuilder) WithPath(path string) *requestBuilder {
	b.inner = b.inner.WithPath(path)
	return b
}

// WithToken lets token prepend its parameter at Build time. A nil token
// means the call site attaches Credentials (or nothing) through WithArgs.
func (b *requestBuilder) WithToken(token AccessToken) *requestBuilder {
	b.token = token
	return b
}

func (b *requestBuilder) WithArgs(args []Argument) *requestBuilder {
	b.args = args
	return b
}

func (b *requestBuilder) Build() *transport.Request {
	args := b.args
	if b.token != nil {
		args = b.token.Contribute(args)
	}
	return b.inner.WithRawQuery(encodeArgs(args)).Build()
}
