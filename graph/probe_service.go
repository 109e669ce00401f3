package graph

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/graphkit/facebook-sdk-go/internal/httpx"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
)

// ProbeService reports whether a path is reachable. It issues a HEAD
// request and inspects only the status code; the body is discarded.
type ProbeService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	path       string
	token      AccessToken
}

// NewProbeService creates a new ProbeService.
func NewProbeService() *ProbeService {
	return &ProbeService{
		client:     httpx.NewDefaultHTTPClient(),
		reqBuilder: newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *ProbeService) WithClient(client transport.HTTPClient) *ProbeService {
	s.client = client
	return s
}

// Path sets the path to probe.
func (s *ProbeService) Path(path string) *ProbeService {
	s.path = path
	return s
}

// Token sets an optional access token.
func (s *ProbeService) Token(token AccessToken) *ProbeService {
	s.token = token
	return s
}

// Validate validates the service parameters.
func (s *ProbeService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ProbeService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the probe. True means the status was in the success range;
// any other status is false, regardless of body content.
func (s *ProbeService) Do(ctx context.Context) (bool, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodHead).
		WithPath(s.path).
		WithToken(s.token).
		Build()

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return false, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ProbeService.Do").
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

func (s *ProbeService) validate() error {
	if s.path == "" {
		return errors.New("path is required")
	}
	if !strings.HasPrefix(s.path, "/") {
		return errors.New("path must start with /")
	}
	return nil
}
