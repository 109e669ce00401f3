package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RestyClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/4", r.URL.Path)
		assert.Equal(t, "123", r.Header.Get("X-Test"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
		w.Write([]byte(`{"id": "4"}`))
	}))
	defer srv.Close()

	client := NewRestyClient(5 * time.Second)
	resp, err := client.Do(context.Background(), &Request{
		Method:  http.MethodGet,
		FullURL: srv.URL + "/4",
		Headers: http.Header{"X-Test": []string{"123"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []byte(`{"id": "4"}`), resp.Body)
	assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))
}

func Test_RestyClient_RedirectLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer srv.Close()

	client := NewRestyClient(5 * time.Second)
	_, err := client.Do(context.Background(), &Request{
		Method:  http.MethodGet,
		FullURL: srv.URL + "/loop",
	})

	assert.Error(t, err)
}

func Test_WrapRestyClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer srv.Close()

	client := WrapRestyClient(resty.New())
	resp, err := client.Do(context.Background(), &Request{
		Method:  http.MethodHead,
		FullURL: srv.URL + "/ping",
	})

	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
}
