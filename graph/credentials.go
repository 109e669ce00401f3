package graph

import (
	"github.com/graphkit/facebook-sdk-go/internal/signature"
)

// Credentials identify the application to the Graph API. They are created
// once at configuration time and never mutated.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Contribute prepends client_id then client_secret.
func (c Credentials) Contribute(args []Argument) []Argument {
	own := []Argument{
		{Key: "client_id", Value: c.ClientID},
		{Key: "client_secret", Value: c.ClientSecret},
	}
	return append(own, args...)
}

// AppSecretProof computes the appsecret_proof argument for token: the
// HMAC-SHA256 of the token string keyed by the client secret, hex encoded.
func (c Credentials) AppSecretProof(token AccessToken) Argument {
	return Argument{
		Key:   "appsecret_proof",
		Value: signature.HMACSHA256(token.TokenData(), c.ClientSecret),
	}
}

var _ QueryContributor = Credentials{}
