package service

import (
	"testing"

	"github.com/ulbra-election/voter/internal/domain"
	internal_errors "github.com/ulbra-election/voter/internal/errors"
	"github.com/ulbra-election/voter/internal/session"
	"github.com/ulbra-election/voter/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full account lifecycle against the real in-memory store and registry, with
// only the oracle faked.
func TestAccountLifecycle(t *testing.T) {
	stg := memory.New()
	sessions := session.NewMemory(0)
	oracle := &MockOracle{}

	voters := NewVoter(stg, oracle)
	login := NewLogin(stg, sessions)

	input := domain.VoterInput{
		Name:            "Jane Doe",
		Email:           "jane@x.com",
		Password:        "secret1",
		PasswordConfirm: "secret1",
	}

	// create assigns an id
	created, err := voters.Create(input)
	require.NoError(t, err)
	require.Greater(t, created.Id, domain.VoterId(0))

	// same email again conflicts
	second := input
	second.Name = "John Doe"
	_, err = voters.Create(second)
	require.Error(t, err)
	assert.True(t, internal_errors.Is(err, internal_errors.KindEmailAlreadyExists))

	// round-trip preserves name/email, never the plaintext
	got, err := voters.Get(created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "jane@x.com", got.Email)
	assert.NotContains(t, got.PassHash, "secret1")

	// login returns a token resolving back to the same voter
	token, profile, err := login.Login("jane@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.Id, profile.Id)

	checked, err := login.CheckToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.Id, checked.Id)

	// wrong password
	_, _, err = login.Login("jane@x.com", "wrong")
	require.Error(t, err)
	assert.True(t, internal_errors.Is(err, internal_errors.KindInvalidCredentials))

	// delete blocked while the oracle reports votes
	oracle.HasVotesFunc = func(voterId domain.VoterId) (bool, error) { return true, nil }
	err = voters.Delete(created.Id)
	require.Error(t, err)
	assert.True(t, internal_errors.Is(err, internal_errors.KindNotAuthorized))
	_, err = voters.Get(created.Id)
	require.NoError(t, err, "record must survive a blocked delete")

	// delete allowed once the oracle clears the voter
	oracle.HasVotesFunc = nil
	require.NoError(t, voters.Delete(created.Id))
	_, err = voters.Get(created.Id)
	require.Error(t, err)
	assert.True(t, internal_errors.Is(err, internal_errors.KindVoterNotFound))

	// the session dies with the voter
	_, err = login.CheckToken(token)
	require.Error(t, err)
	assert.True(t, internal_errors.Is(err, internal_errors.KindInvalidToken))
}
