package validation

import (
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ulbra-election/voter/internal/domain"
	internal_errors "github.com/ulbra-election/voter/internal/errors"
)

// Full name: one or more letters, a single space, then letters/spaces.
// \p{L} keeps it unicode-aware, so "José da Silva" passes.
var nameRe = regexp.MustCompile(`^\p{L}+ [\p{L} ]+$`)

// ValidateVoterInput checks a create/update payload. Rules run in order and
// the first failure wins. A blank password is allowed only on update, where
// it means "keep the current credentials".
func ValidateVoterInput(input domain.VoterInput, isUpdate bool) error {
	if isBlank(input.Email) {
		return &internal_errors.ErrorWithStatusCode{
			Kind:       internal_errors.KindInvalidEmail,
			Message:    "Invalid email",
			StatusCode: http.StatusBadRequest,
		}
	}

	if isBlank(input.Name) || utf8.RuneCountInString(input.Name) < 5 || !nameRe.MatchString(input.Name) {
		return &internal_errors.ErrorWithStatusCode{
			Kind:       internal_errors.KindInvalidName,
			Message:    "Invalid name",
			StatusCode: http.StatusBadRequest,
		}
	}

	if !isBlank(input.Password) {
		if input.Password != input.PasswordConfirm {
			return &internal_errors.ErrorWithStatusCode{
				Kind:       internal_errors.KindPasswordMismatch,
				Message:    "Passwords don't match",
				StatusCode: http.StatusBadRequest,
			}
		}
	} else if !isUpdate {
		return &internal_errors.ErrorWithStatusCode{
			Kind:       internal_errors.KindPasswordRequired,
			Message:    "Password is required",
			StatusCode: http.StatusBadRequest,
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
