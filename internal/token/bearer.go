package token

import "strings"

// FromAuthorizationHeader extracts the token of an "Authorization: Bearer
// <token>" header. The scheme is matched case-insensitively.
func FromAuthorizationHeader(header string) (string, error) {
	scheme, tok, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tok = strings.TrimSpace(tok)
	if tok == "" || strings.ContainsAny(tok, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return tok, nil
}
