package validation

import (
	"testing"

	"github.com/ulbra-election/voter/internal/domain"
	internal_errors "github.com/ulbra-election/voter/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func input(name, email, password, confirm string) domain.VoterInput {
	return domain.VoterInput{Name: name, Email: email, Password: password, PasswordConfirm: confirm}
}

func TestValidateVoterInput(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.VoterInput
		isUpdate bool
		wantKind internal_errors.Kind
	}{
		{
			name:  "valid create",
			input: input("Jane Doe", "jane@x.com", "secret1", "secret1"),
		},
		{
			name:     "valid update without password",
			input:    input("Jane Doe", "jane@x.com", "", ""),
			isUpdate: true,
		},
		{
			name:     "blank email",
			input:    input("Jane Doe", "", "secret1", "secret1"),
			wantKind: internal_errors.KindInvalidEmail,
		},
		{
			name:     "whitespace email",
			input:    input("Jane Doe", "   ", "secret1", "secret1"),
			wantKind: internal_errors.KindInvalidEmail,
		},
		{
			name:     "email checked before name",
			input:    input("", "", "secret1", "secret1"),
			wantKind: internal_errors.KindInvalidEmail,
		},
		{
			name:     "blank name",
			input:    input("", "jane@x.com", "secret1", "secret1"),
			wantKind: internal_errors.KindInvalidName,
		},
		{
			name:     "single word name",
			input:    input("Madonna", "jane@x.com", "secret1", "secret1"),
			wantKind: internal_errors.KindInvalidName,
		},
		{
			name:     "name shorter than five runes",
			input:    input("A Bc", "jane@x.com", "secret1", "secret1"),
			wantKind: internal_errors.KindInvalidName,
		},
		{
			name:     "name with digits",
			input:    input("Jane D03", "jane@x.com", "secret1", "secret1"),
			wantKind: internal_errors.KindInvalidName,
		},
		{
			name:     "name with leading space",
			input:    input(" Jane Doe", "jane@x.com", "secret1", "secret1"),
			wantKind: internal_errors.KindInvalidName,
		},
		{
			name:  "multi word name",
			input: input("Jane da Silva Doe", "jane@x.com", "secret1", "secret1"),
		},
		{
			name:  "unicode letters",
			input: input("José Avelar", "jose@x.com", "secret1", "secret1"),
		},
		{
			name:     "password mismatch on create",
			input:    input("Jane Doe", "jane@x.com", "secret1", "secret2"),
			wantKind: internal_errors.KindPasswordMismatch,
		},
		{
			name:     "password mismatch on update",
			input:    input("Jane Doe", "jane@x.com", "secret1", "secret2"),
			isUpdate: true,
			wantKind: internal_errors.KindPasswordMismatch,
		},
		{
			name:     "blank password on create",
			input:    input("Jane Doe", "jane@x.com", "", ""),
			wantKind: internal_errors.KindPasswordRequired,
		},
		{
			name:     "whitespace password on create",
			input:    input("Jane Doe", "jane@x.com", "  ", ""),
			wantKind: internal_errors.KindPasswordRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVoterInput(tt.input, tt.isUpdate)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, internal_errors.Is(err, tt.wantKind),
				"want kind %s, got %s", tt.wantKind, internal_errors.KindOf(err))
		})
	}
}
