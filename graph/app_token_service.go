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

type appAccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// GetAppAccessTokenService exchanges app credentials for an app access
// token. This is the call path that attaches Credentials to the query
// instead of a token.
type GetAppAccessTokenService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	creds      Credentials
}

// NewGetAppAccessTokenService creates a new GetAppAccessTokenService.
func NewGetAppAccessTokenService(creds Credentials) *GetAppAccessTokenService {
	return &GetAppAccessTokenService{
		client:     httpx.NewDefaultHTTPClient(),
		reqBuilder: newRequestBuilder(),
		creds:      creds,
	}
}

// WithClient sets the HTTP client for the service.
func (s *GetAppAccessTokenService) WithClient(client transport.HTTPClient) *GetAppAccessTokenService {
	s.client = client
	return s
}

// Validate validates the service parameters.
func (s *GetAppAccessTokenService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("GetAppAccessTokenService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *GetAppAccessTokenService) Do(ctx context.Context) (*AppAccessToken, error) {
	args := s.creds.Contribute([]Argument{
		{Key: "grant_type", Value: "client_credentials"},
	})
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/oauth/access_token").
		WithArgs(args).
		Build()

	op := "GetAppAccessTokenService.Do"
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp); err != nil {
		return nil, wrapResponseError(op, err)
	}

	decoded, err := decodeResponse[appAccessTokenResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}
	return &AppAccessToken{Data: decoded.AccessToken}, nil
}

func (s *GetAppAccessTokenService) validate() error {
	var errs []string
	if s.creds.ClientID == "" {
		errs = append(errs, "client id is required")
	}
	if s.creds.ClientSecret == "" {
		errs = append(errs, "client secret is required")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
