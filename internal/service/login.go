package service

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ulbra-election/voter/internal/crypto"
	"github.com/ulbra-election/voter/internal/domain"
	internal_errors "github.com/ulbra-election/voter/internal/errors"
	"github.com/ulbra-election/voter/internal/logger"
	"github.com/ulbra-election/voter/internal/session"
	"github.com/ulbra-election/voter/internal/storage"
)

type LoginService interface {
	Login(email domain.Email, password string) (domain.SessionToken, domain.Voter, error)
	CheckToken(token domain.SessionToken) (domain.Voter, error)
	Logout(token domain.SessionToken) error
}

// SessionRegistry binds opaque tokens to voter ids. The registry owns token
// expiry; the login service owns the "bound voter still exists" check.
type SessionRegistry interface {
	Save(token domain.SessionToken, voterId domain.VoterId) error
	Resolve(token domain.SessionToken) (domain.VoterId, error)
	Delete(token domain.SessionToken) error
}

type Login struct {
	storage  VoterStorage
	sessions SessionRegistry
}

func NewLogin(storage VoterStorage, sessions SessionRegistry) *Login {
	return &Login{storage: storage, sessions: sessions}
}

// Login verifies credentials and mints a fresh opaque token bound to the
// voter. A missing account and a wrong password are indistinguishable to the
// caller, to not leak which emails exist.
func (s *Login) Login(email domain.Email, password string) (domain.SessionToken, domain.Voter, error) {
	voter, err := s.storage.VoterByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", domain.Voter{}, invalidCredentials()
		}
		return "", domain.Voter{}, err
	}

	if !crypto.VerifyPassword(password, voter.PassHash) {
		return "", domain.Voter{}, invalidCredentials()
	}

	token := domain.SessionToken(uuid.NewString())
	if err := s.sessions.Save(token, voter.Id); err != nil {
		logger.Log.Error("failed to register session token", "voter_id", voter.Id, "error", err)
		return "", domain.Voter{}, err
	}

	return token, voter, nil
}

// CheckToken resolves a token back to its voter. The token is invalid if the
// registry doesn't know it or if the bound voter was deleted after login.
func (s *Login) CheckToken(token domain.SessionToken) (domain.Voter, error) {
	if strings.TrimSpace(token) == "" {
		return domain.Voter{}, invalidToken()
	}

	voterId, err := s.sessions.Resolve(token)
	if err != nil {
		if errors.Is(err, session.ErrTokenNotFound) {
			return domain.Voter{}, invalidToken()
		}
		return domain.Voter{}, err
	}

	voter, err := s.storage.Voter(voterId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// voter deleted after login
			return domain.Voter{}, invalidToken()
		}
		return domain.Voter{}, err
	}
	return voter, nil
}

// Logout drops the token from the registry. Unknown tokens are ignored.
func (s *Login) Logout(token domain.SessionToken) error {
	return s.sessions.Delete(token)
}

func invalidCredentials() error {
	return &internal_errors.ErrorWithStatusCode{
		Kind:       internal_errors.KindInvalidCredentials,
		Message:    "Invalid credentials",
		StatusCode: http.StatusUnauthorized,
	}
}

func invalidToken() error {
	return &internal_errors.ErrorWithStatusCode{
		Kind:       internal_errors.KindInvalidToken,
		Message:    "Invalid token",
		StatusCode: http.StatusUnauthorized,
	}
}
