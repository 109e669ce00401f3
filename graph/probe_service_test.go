package graph

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/graphkit/facebook-sdk-go/internal/testutil"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeService_validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, NewProbeService().Path("/zuck").validate())
	})

	t.Run("missing path", func(t *testing.T) {
		assert.Error(t, NewProbeService().validate())
	})

	t.Run("relative path", func(t *testing.T) {
		assert.Error(t, NewProbeService().Path("zuck").validate())
	})
}

func TestProbeService_Do_StatusRange(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{200, true},
		{204, true},
		{299, true},
		{199, false},
		{300, false},
		{301, false},
		{400, false},
		{500, false},
	}
	for _, tc := range cases {
		fakeClient := &testutil.FakeHTTPClient{
			DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
				assert.Equal(t, http.MethodHead, req.Method)
				// whatever the body says must not influence the result
				return &transport.Response{StatusCode: tc.status, Body: []byte("ignored")}, nil
			},
		}

		ok, err := NewProbeService().WithClient(fakeClient).Path("/zuck").Do(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "status %d", tc.status)
	}
}

func TestProbeService_Do_TokenAttached(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			query := testutil.ExtractQuery(t, req.FullURL)
			assert.Equal(t, "app-tok", query.Get("access_token"))
			return &transport.Response{StatusCode: 200}, nil
		},
	}

	ok, err := NewProbeService().
		WithClient(fakeClient).
		Path("/app").
		Token(AppAccessToken{Data: "app-tok"}).
		Do(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProbeService_Do_TransportError(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return nil, errors.New("network is down")
		},
	}

	ok, err := NewProbeService().WithClient(fakeClient).Path("/zuck").Do(context.Background())
	assert.False(t, ok)

	var sdkErr *sdkerr.SDKError
	require.ErrorAs(t, err, &sdkErr)
	assert.Equal(t, sdkerr.ErrRequestFailed, sdkErr.Kind())
}
