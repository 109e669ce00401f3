package graph

import "strings"

// The Graph API reports some auth failures only through a challenge header,
// with no response body at all.
const authHeaderPrefix = `OAuth "Facebook Platform" `

// parseAuthenticateHeader parses a WWW-Authenticate challenge of the form
//
//	OAuth "Facebook Platform" "<type>" "<message>"
//
// Inside a quoted string a backslash escapes the following character. The
// entire input must be consumed; a partial or prefix match fails rather than
// yielding truncated data.
func parseAuthenticateHeader(header string) (*FacebookException, bool) {
	rest, ok := strings.CutPrefix(header, authHeaderPrefix)
	if !ok {
		return nil, false
	}
	typ, rest, ok := parseQuotedString(rest)
	if !ok {
		return nil, false
	}
	rest, ok = strings.CutPrefix(rest, " ")
	if !ok {
		return nil, false
	}
	msg, rest, ok := parseQuotedString(rest)
	if !ok || rest != "" {
		return nil, false
	}
	return &FacebookException{Type: typ, Message: msg}, true
}

// parseQuotedString consumes a leading double-quoted string, returning its
// unescaped content and the remaining input.
func parseQuotedString(s string) (content, rest string, ok bool) {
	if len(s) == 0 || s[0] != '"' {
		return "", "", false
	}
	var sb strings.Builder
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", "", false
			}
			sb.WriteByte(s[i+1])
			i += 2
		case '"':
			return sb.String(), s[i+1:], true
		default:
			sb.WriteByte(s[i])
			i++
		}
	}
	// unterminated string
	return "", "", false
}

// formatAuthenticateHeader renders exc in the challenge-header grammar,
// escaping quotes and backslashes. Inverse of parseAuthenticateHeader.
func formatAuthenticateHeader(exc *FacebookException) string {
	return authHeaderPrefix + quoteString(exc.Type) + " " + quoteString(exc.Message)
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
