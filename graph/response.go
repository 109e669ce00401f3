package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/graphkit/facebook-sdk-go/sdkerr"
	"github.com/graphkit/facebook-sdk-go/transport"
)

// StatusError is a failure response that matched neither the JSON error
// shape nor the challenge-header grammar. It carries the raw status, headers
// and body for inspection; there is no structured message.
type StatusError struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.StatusCode, string(e.Body))
}

// checkResponseError classifies a response by status code. Success-range
// statuses return nil; the caller then decodes the body. For any other
// status the decode attempts run in strict order, body JSON first, then the
// WWW-Authenticate header, and the first success wins. No partial or
// combined result is ever constructed.
func checkResponseError(resp *transport.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if exc, ok := decodeException(resp.Body); ok {
		return exc
	}
	if resp.Headers != nil {
		if exc, ok := parseAuthenticateHeader(resp.Headers.Get("WWW-Authenticate")); ok {
			return exc
		}
	}
	return &StatusError{StatusCode: resp.StatusCode, Headers: resp.Headers, Body: resp.Body}
}

// wrapResponseError attaches subsys/op and picks the error kind: failures
// carrying a FacebookException are API errors, everything else is a
// protocol error.
func wrapResponseError(op string, err error) *sdkerr.SDKError {
	kind := sdkerr.ErrProtocol
	var exc *FacebookException
	if errors.As(err, &exc) {
		kind = sdkerr.ErrAPIError
	}
	return sdkerr.NewSDKError().
		WithSubsys(subsys).
		WithOp(op).
		WithKind(kind).
		WithCause(err)
}

func decodeResponse[T any](data []byte, op string) (*T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrDecodeError).
			WithCause(err)
	}
	return &result, nil
}
