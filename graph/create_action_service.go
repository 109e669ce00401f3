package graph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/graphkit/facebook-sdk-go/internal/httpx"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
)

// Action names an application-defined Open Graph interaction. Construct one
// with NewAction from trusted, literal-like input.
type Action string

// NewAction validates name as a non-empty printable-ASCII identifier.
func NewAction(name string) (Action, error) {
	if name == "" {
		return "", errors.New("action must not be empty")
	}
	for i := 0; i < len(name); i++ {
		if name[i] <= ' ' || name[i] > '~' {
			return "", fmt.Errorf("action contains non-printable or non-ASCII byte at index %d", i)
		}
	}
	return Action(name), nil
}

// CreatedObject carries the id of a newly created Graph object.
type CreatedObject struct {
	ID string `json:"id"`
}

// CreateActionService publishes an Open Graph action on behalf of a user.
// Posting is a user-scoped operation, so a UserAccessToken is required.
type CreateActionService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder

	namespace string
	action    Action
	token     UserAccessToken
	tokenSet  bool
	args      []Argument
}

// NewCreateActionService creates a new CreateActionService.
func NewCreateActionService() *CreateActionService {
	return &CreateActionService{
		client:     httpx.NewDefaultHTTPClient(),
		reqBuilder: newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *CreateActionService) WithClient(client transport.HTTPClient) *CreateActionService {
	s.client = client
	return s
}

// Namespace sets the app namespace the action belongs to.
func (s *CreateActionService) Namespace(ns string) *CreateActionService {
	s.namespace = ns
	return s
}

// Action sets the action to publish.
func (s *CreateActionService) Action(a Action) *CreateActionService {
	s.action = a
	return s
}

// UserToken sets the user access token the action is published under.
func (s *CreateActionService) UserToken(token UserAccessToken) *CreateActionService {
	s.token = token
	s.tokenSet = true
	return s
}

// Arg adds an action argument.
func (s *CreateActionService) Arg(key string, value SimpleType) *CreateActionService {
	s.args = append(s.args, Arg(key, value))
	return s
}

// ArgRaw adds an already-encoded argument, such as Credentials.AppSecretProof.
func (s *CreateActionService) ArgRaw(args ...Argument) *CreateActionService {
	s.args = append(s.args, args...)
	return s
}

// Validate validates the service parameters.
func (s *CreateActionService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("CreateActionService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service.
func (s *CreateActionService) Do(ctx context.Context) (*CreatedObject, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/me/" + s.namespace + ":" + string(s.action)).
		WithToken(s.token).
		WithArgs(s.args).
		Build()

	op := "CreateActionService.Do"
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

	return decodeResponse[CreatedObject](resp.Body, op)
}

func (s *CreateActionService) validate() error {
	var errs []string

	if s.namespace == "" {
		errs = append(errs, "namespace is required")
	}
	if _, err := NewAction(string(s.action)); err != nil {
		errs = append(errs, err.Error())
	}
	if !s.tokenSet || s.token.Data == "" {
		errs = append(errs, "user access token is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
