package graph

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/graphkit/facebook-sdk-go/internal/httpx"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
)

type extendTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExtendUserAccessTokenService exchanges a short-lived user token for a
// long-lived one.
type ExtendUserAccessTokenService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	creds      Credentials
	token      UserAccessToken
	tokenSet   bool
	now        func() time.Time
}

// NewExtendUserAccessTokenService creates a new ExtendUserAccessTokenService.
func NewExtendUserAccessTokenService(creds Credentials) *ExtendUserAccessTokenService {
	return &ExtendUserAccessTokenService{
		client:     httpx.NewDefaultHTTPClient(),
		reqBuilder: newRequestBuilder(),
		creds:      creds,
		now:        time.Now,
	}
}

// WithClient sets the HTTP client for the service.
func (s *ExtendUserAccessTokenService) WithClient(client transport.HTTPClient) *ExtendUserAccessTokenService {
	s.client = client
	return s
}

// UserToken sets the short-lived token to exchange.
func (s *ExtendUserAccessTokenService) UserToken(token UserAccessToken) *ExtendUserAccessTokenService {
	s.token = token
	s.tokenSet = true
	return s
}

// Validate validates the service parameters.
func (s *ExtendUserAccessTokenService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("ExtendUserAccessTokenService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service. The returned token carries an advisory expiry
// derived from the exchange response when the service reports one.
func (s *ExtendUserAccessTokenService) Do(ctx context.Context) (*UserAccessToken, error) {
	args := s.creds.Contribute([]Argument{
		{Key: "grant_type", Value: "fb_exchange_token"},
		{Key: "fb_exchange_token", Value: s.token.Data},
	})
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/oauth/access_token").
		WithArgs(args).
		Build()

	op := "ExtendUserAccessTokenService.Do"
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

	decoded, err := decodeResponse[extendTokenResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}

	extended := &UserAccessToken{Data: decoded.AccessToken}
	if decoded.ExpiresIn > 0 {
		extended.Expires = s.now().Add(time.Duration(decoded.ExpiresIn) * time.Second)
	}
	return extended, nil
}

func (s *ExtendUserAccessTokenService) validate() error {
	var errs []string
	if s.creds.ClientID == "" {
		errs = append(errs, "client id is required")
	}
	if s.creds.ClientSecret == "" {
		errs = append(errs, "client secret is required")
	}
	if !s.tokenSet || s.token.Data == "" {
		errs = append(errs, "user access token is required")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
