package transport

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts a resty.Client to the HTTPClient interface, for callers
// that already configure resty (proxies, tracing) at the application level.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient with the specified timeout and the
// SDK's redirect limit.
func NewRestyClient(timeout time.Duration) *RestyClient {
	c := resty.New()
	c.SetTimeout(timeout)
	c.SetRedirectPolicy(resty.FlexibleRedirectPolicy(MaxRedirects))
	return &RestyClient{client: c}
}

// WrapRestyClient adapts an externally configured resty.Client.
func WrapRestyClient(c *resty.Client) *RestyClient {
	return &RestyClient{client: c}
}

// Do executes the request through resty. Resty buffers the body itself, so
// the response is complete by the time it is returned.
func (r *RestyClient) Do(ctx context.Context, req *Request) (*Response, error) {
	rr := r.client.R().SetContext(ctx)
	if req.Headers != nil {
		rr.SetHeaderMultiValues(req.Headers)
	}
	if req.Body != nil {
		rr.SetBody(req.Body)
	}

	resp, err := rr.Execute(req.Method, req.FullURL)
	if err != nil {
		return nil, err
	}

	return &Response{
		Body:       resp.Body(),
		StatusCode: resp.StatusCode(),
		Headers:    resp.Header(),
	}, nil
}
