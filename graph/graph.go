// Package graph implements the request-building, authentication and
// response-interpretation pipeline for the Facebook Graph API, plus thin
// service wrappers for common endpoints.
package graph

const (
	subsys = "graph"

	// Host is the fixed Graph API host. All requests go over TLS on the
	// standard port.
	Host = "graph.facebook.com"

	defaultBaseURL = "https://" + Host
)
