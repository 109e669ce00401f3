package graph

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/graphkit/facebook-sdk-go/internal/httpx"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
	"golang.org/x/sync/errgroup"
)

const defaultFetchConcurrency = 4

// GetObjectsService fetches several Graph objects keyed by id, with a
// bounded number of requests in flight. The core pipeline itself stays
// sequential per request; this is a convenience layer above it.
type GetObjectsService struct {
	client      transport.HTTPClient
	ids         []string
	token       AccessToken
	concurrency int
}

// NewGetObjectsService creates a new GetObjectsService.
func NewGetObjectsService() *GetObjectsService {
	return &GetObjectsService{
		client:      httpx.NewDefaultHTTPClient(),
		concurrency: defaultFetchConcurrency,
	}
}

// WithClient sets the HTTP client for the service.
func (s *GetObjectsService) WithClient(client transport.HTTPClient) *GetObjectsService {
	s.client = client
	return s
}

// IDs sets the object ids to fetch.
func (s *GetObjectsService) IDs(ids ...string) *GetObjectsService {
	s.ids = ids
	return s
}

// Token sets the access token attached to every request.
func (s *GetObjectsService) Token(token AccessToken) *GetObjectsService {
	s.token = token
	return s
}

// Concurrency bounds the number of in-flight requests.
func (s *GetObjectsService) Concurrency(n int) *GetObjectsService {
	s.concurrency = n
	return s
}

// Validate validates the service parameters.
func (s *GetObjectsService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("GetObjectsService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service. The first failing fetch cancels the rest.
func (s *GetObjectsService) Do(ctx context.Context) (map[string]json.RawMessage, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	var mu sync.Mutex
	out := make(map[string]json.RawMessage, len(s.ids))

	for _, id := range s.ids {
		id := id
		g.Go(func() error {
			svc := NewGetObjectService().WithClient(s.client).Path("/" + id)
			if s.token != nil {
				svc.Token(s.token)
			}
			body, err := svc.fetch(ctx, "GetObjectsService.Do")
			if err != nil {
				return err
			}
			mu.Lock()
			out[id] = json.RawMessage(body)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GetObjectsService) validate() error {
	var errs []string
	if len(s.ids) == 0 {
		errs = append(errs, "at least one id is required")
	}
	for _, id := range s.ids {
		if id == "" || strings.Contains(id, "/") {
			errs = append(errs, "ids must be non-empty and contain no /")
			break
		}
	}
	if s.concurrency < 1 {
		errs = append(errs, "concurrency must be at least 1")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
