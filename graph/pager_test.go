package graph

import (
	"context"
	"testing"

	"github.com/graphkit/facebook-sdk-go/internal/testutil"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkin struct {
	ID string `json:"id"`
}

func TestFetchNextPage(t *testing.T) {
	t.Run("nil pager is exhausted", func(t *testing.T) {
		next, ok, err := FetchNextPage[checkin](context.Background(), nil, nil)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, next)
	})

	t.Run("empty next link is exhausted", func(t *testing.T) {
		page := &Pager[checkin]{Data: []checkin{{ID: "1"}}}
		next, ok, err := FetchNextPage(context.Background(), nil, page)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, next)
	})

	t.Run("follows next link verbatim", func(t *testing.T) {
		nextLink := "https://graph.facebook.com/me/checkins?access_token=tok&until=1355225135"

		fakeClient := &testutil.FakeHTTPClient{
			DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
				assert.Equal(t, nextLink, req.FullURL)
				return &transport.Response{
					StatusCode: 200,
					Body:       []byte(`{"data":[{"id":"2"},{"id":"3"}],"paging":{}}`),
				}, nil
			},
		}

		page := &Pager[checkin]{Paging: Paging{Next: nextLink}}
		next, ok, err := FetchNextPage(context.Background(), fakeClient, page)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, next.Data, 2)
		assert.Equal(t, "2", next.Data[0].ID)
		assert.Empty(t, next.Paging.Next)
	})

	t.Run("error response is classified", func(t *testing.T) {
		fakeClient := &testutil.FakeHTTPClient{
			DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
				return &transport.Response{
					StatusCode: 400,
					Body:       []byte(`{"type":"OAuthException","message":"Session expired"}`),
				}, nil
			},
		}

		page := &Pager[checkin]{Paging: Paging{Next: "https://graph.facebook.com/x?after=1"}}
		next, ok, err := FetchNextPage(context.Background(), fakeClient, page)
		assert.Nil(t, next)
		assert.False(t, ok)

		var sdkErr *sdkerr.SDKError
		require.ErrorAs(t, err, &sdkErr)
		assert.Equal(t, sdkerr.ErrAPIError, sdkErr.Kind())
	})
}
