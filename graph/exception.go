package graph

import (
	"encoding/json"
	"fmt"
)

// FacebookException is an error explicitly reported by the Graph API, either
// in the response body or in the WWW-Authenticate header. It is only ever
// constructed from a successfully parsed error source.
type FacebookException struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *FacebookException) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// decodeException attempts a strict decode of body as a Graph error payload.
// Both the flat {"type","message"} shape and the {"error":{...}} envelope
// the live API sends are accepted; both string fields must be present.
// Anything else is a decode failure, not an exception.
func decodeException(body []byte) (*FacebookException, bool) {
	var flat struct {
		Type    *string `json:"type"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Type != nil && flat.Message != nil {
		return &FacebookException{Type: *flat.Type, Message: *flat.Message}, true
	}

	var wrapped struct {
		Error *struct {
			Type    *string `json:"type"`
			Message *string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error != nil &&
		wrapped.Error.Type != nil && wrapped.Error.Message != nil {
		return &FacebookException{Type: *wrapped.Error.Type, Message: *wrapped.Error.Message}, true
	}

	return nil, false
}
