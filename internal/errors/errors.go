package errors

import "errors"

// Kind is a stable machine-readable error category. Handlers map kinds to
// status codes via StatusCode; API clients switch on Kind.
type Kind string

const (
	KindInvalidId          Kind = "invalid_id"
	KindVoterNotFound      Kind = "voter_not_found"
	KindInvalidEmail       Kind = "invalid_email"
	KindInvalidName        Kind = "invalid_name"
	KindPasswordMismatch   Kind = "password_mismatch"
	KindPasswordRequired   Kind = "password_required"
	KindEmailAlreadyExists Kind = "email_already_exists"
	KindNotAuthorized      Kind = "not_authorized"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindInvalidToken       Kind = "invalid_token"
	KindOracleUnavailable  Kind = "oracle_unavailable"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of err, or "" for plain internal errors.
func KindOf(err error) Kind {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
