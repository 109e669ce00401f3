package graph

import (
	"context"
	"net/http"

	"github.com/graphkit/facebook-sdk-go/internal/httpx"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
)

// Pager is one page of a paged Graph listing.
type Pager[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

// Paging carries the absolute next/previous page links of a listing.
type Paging struct {
	Previous string `json:"previous"`
	Next     string `json:"next"`
}

// FetchNextPage follows the page's next link. ok is false when the listing
// is exhausted. The link is absolute and already carries its full query,
// access token included, so it is requested verbatim. A nil client selects
// the default transport.
func FetchNextPage[T any](ctx context.Context, client transport.HTTPClient, p *Pager[T]) (next *Pager[T], ok bool, err error) {
	const op = "FetchNextPage"

	if p == nil || p.Paging.Next == "" {
		return nil, false, nil
	}
	if client == nil {
		client = httpx.NewDefaultHTTPClient()
	}

	req := &transport.Request{Method: http.MethodGet, FullURL: p.Paging.Next}
	resp, err := client.Do(ctx, req)
	if err != nil {
		return nil, false, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp); err != nil {
		return nil, false, wrapResponseError(op, err)
	}

	page, err := decodeResponse[Pager[T]](resp.Body, op)
	if err != nil {
		return nil, false, err
	}
	return page, true, nil
}
