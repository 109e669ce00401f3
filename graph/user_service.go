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

// User is a Graph user profile node. Fields are only present when the token
// grants access to them.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Gender    string `json:"gender"`
	Locale    string `json:"locale"`
	Link      string `json:"link"`
	Verified  *bool  `json:"verified"`
	Birthday  string `json:"birthday"` // MM/DD/YYYY, as served by the API
}

// GetUserService fetches a user profile. The id defaults to "me", the user
// bound to the token.
type GetUserService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	id         string
	token      *UserAccessToken
	args       []Argument
}

// NewGetUserService creates a new GetUserService.
func NewGetUserService() *GetUserService {
	return &GetUserService{
		client:     httpx.NewDefaultHTTPClient(),
		reqBuilder: newRequestBuilder(),
		id:         "me",
	}
}

// WithClient sets the HTTP client for the service.
func (s *GetUserService) WithClient(client transport.HTTPClient) *GetUserService {
	s.client = client
	return s
}

// ID sets the user id to fetch.
func (s *GetUserService) ID(id string) *GetUserService {
	s.id = id
	return s
}

// Token sets the user access token. Public profiles can be fetched without
// one.
func (s *GetUserService) Token(token UserAccessToken) *GetUserService {
	s.token = &token
	return s
}

// Fields restricts the response to the named fields.
func (s *GetUserService) Fields(fields ...string) *GetUserService {
	s.args = append(s.args, Arg("fields", Text(strings.Join(fields, ","))))
	return s
}

// Validate validates the service parameters.
func (s *GetUserService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("GetUserService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *GetUserService) Do(ctx context.Context) (*User, error) {
	builder := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/" + s.id).
		WithArgs(s.args)
	if s.token != nil {
		builder = builder.WithToken(*s.token)
	}
	req := builder.Build()

	op := "GetUserService.Do"
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

	return decodeResponse[User](resp.Body, op)
}

func (s *GetUserService) validate() error {
	if s.id == "" {
		return errors.New("id is required")
	}
	if strings.Contains(s.id, "/") {
		return errors.New("id must not contain /")
	}
	return nil
}
