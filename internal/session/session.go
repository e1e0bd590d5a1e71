// Package session holds the token registries backing the login service.
// A registry maps an opaque bearer token to the voter id it was issued for.
// Two implementations: in-memory (single instance, tests) and redis
// (shared between instances).
package session

import "errors"

// ErrTokenNotFound is returned when a token is unknown or has expired.
var ErrTokenNotFound = errors.New("token not found")
