package graph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/graphkit/facebook-sdk-go/internal/httpx"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
)

// GetObjectService fetches a single Graph object.
type GetObjectService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	path       string
	token      AccessToken
	args       []Argument
}

// NewGetObjectService creates a new GetObjectService.
func NewGetObjectService() *GetObjectService {
	return &GetObjectService{
		client:     httpx.NewDefaultHTTPClient(),
		reqBuilder: newRequestBuilder(),
	}
}

// WithClient sets the HTTP client for the service.
func (s *GetObjectService) WithClient(client transport.HTTPClient) *GetObjectService {
	s.client = client
	return s
}

// Path sets the object path, e.g. "/zuck".
func (s *GetObjectService) Path(path string) *GetObjectService {
	s.path = path
	return s
}

// Token sets the access token attached to the request.
func (s *GetObjectService) Token(token AccessToken) *GetObjectService {
	s.token = token
	return s
}

// Arg adds an extra query argument.
func (s *GetObjectService) Arg(key string, value SimpleType) *GetObjectService {
	s.args = append(s.args, Arg(key, value))
	return s
}

// ArgRaw adds an already-encoded argument, such as Credentials.AppSecretProof.
func (s *GetObjectService) ArgRaw(args ...Argument) *GetObjectService {
	s.args = append(s.args, args...)
	return s
}

// Fields restricts the response to the named fields.
func (s *GetObjectService) Fields(fields ...string) *GetObjectService {
	s.args = append(s.args, Arg("fields", Text(strings.Join(fields, ","))))
	return s
}

// Validate validates the service parameters.
func (s *GetObjectService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("GetObjectService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service, returning the raw JSON object.
func (s *GetObjectService) Do(ctx context.Context) (json.RawMessage, error) {
	body, err := s.fetch(ctx, "GetObjectService.Do")
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// GetObject executes svc and decodes the object into T.
func GetObject[T any](ctx context.Context, svc *GetObjectService) (*T, error) {
	op := "GetObjectService.Do"
	body, err := svc.fetch(ctx, op)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](body, op)
}

func (s *GetObjectService) fetch(ctx context.Context, op string) ([]byte, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath(s.path).
		WithToken(s.token).
		WithArgs(s.args).
		Build()

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

	return resp.Body, nil
}

func (s *GetObjectService) validate() error {
	if s.path == "" {
		return errors.New("path is required")
	}
	if !strings.HasPrefix(s.path, "/") {
		return errors.New("path must start with /")
	}
	return nil
}
