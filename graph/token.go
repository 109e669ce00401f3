package graph

import "time"

// AccessToken is an opaque credential authorizing a scope of Graph API
// operations. UserAccessToken and AppAccessToken are the two concrete kinds;
// operations that require a specific kind take the concrete type, so the
// compiler enforces the "which token is required here" contract.
type AccessToken interface {
	QueryContributor

	// TokenData returns the raw token string.
	TokenData() string
}

// UserAccessToken is scoped to an authenticated end-user and enables
// user-specific and posting operations. Expires is advisory metadata only;
// the zero value means no known expiry.
type UserAccessToken struct {
	Data    string
	Expires time.Time
}

// Contribute prepends the access_token parameter.
func (t UserAccessToken) Contribute(args []Argument) []Argument {
	return append([]Argument{{Key: "access_token", Value: t.Data}}, args...)
}

// TokenData returns the raw token string.
func (t UserAccessToken) TokenData() string { return t.Data }

// HasExpired reports whether the advisory expiry has passed. Tokens without
// an expiry never report expired.
func (t UserAccessToken) HasExpired(now time.Time) bool {
	return !t.Expires.IsZero() && now.After(t.Expires)
}

// AppAccessToken is the app-wide administrative token.
type AppAccessToken struct {
	Data string
}

// Contribute prepends the access_token parameter.
func (t AppAccessToken) Contribute(args []Argument) []Argument {
	return append([]Argument{{Key: "access_token", Value: t.Data}}, args...)
}

// TokenData returns the raw token string.
func (t AppAccessToken) TokenData() string { return t.Data }

var (
	_ AccessToken = UserAccessToken{}
	_ AccessToken = AppAccessToken{}
)
