package service

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ulbra-election/voter/internal/crypto"
	"github.com/ulbra-election/voter/internal/domain"
	internal_errors "github.com/ulbra-election/voter/internal/errors"
	"github.com/ulbra-election/voter/internal/logger"
	"github.com/ulbra-election/voter/internal/storage"
	"github.com/ulbra-election/voter/internal/validation"
)

type VoterService interface {
	Create(input domain.VoterInput) (domain.Voter, error)
	GetAll() ([]domain.Voter, error)
	Get(id domain.VoterId) (domain.Voter, error)
	Update(id domain.VoterId, input domain.VoterInput) (domain.Voter, error)
	Delete(id domain.VoterId) error
}

type VoterStorage interface {
	SaveVoter(voter domain.Voter) (domain.Voter, error)
	Voters() ([]domain.Voter, error)
	Voter(id domain.VoterId) (domain.Voter, error)
	VoterByEmail(email domain.Email) (domain.Voter, error)
	UpdateVoter(voter domain.Voter) (domain.Voter, error)
	DeleteVoter(id domain.VoterId) error
}

// ElectionOracle reports whether a voter has already cast votes. It is a
// remote collaborator: an error means "undetermined", never "false".
type ElectionOracle interface {
	HasVotes(voterId domain.VoterId) (bool, error)
}

type Voter struct {
	storage VoterStorage
	oracle  ElectionOracle
}

func NewVoter(storage VoterStorage, oracle ElectionOracle) *Voter {
	return &Voter{storage: storage, oracle: oracle}
}

// Create validates the input, hashes the password and persists a new record.
func (s *Voter) Create(input domain.VoterInput) (domain.Voter, error) {
	if err := validation.ValidateVoterInput(input, false); err != nil {
		return domain.Voter{}, err
	}

	passHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.Voter{}, err
	}

	voter := domain.Voter{
		Name:     input.Name,
		Email:    strings.ToLower(input.Email),
		PassHash: passHash,
	}

	saved, err := s.storage.SaveVoter(voter)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return domain.Voter{}, emailAlreadyExists()
		}
		return domain.Voter{}, err
	}
	return saved, nil
}

func (s *Voter) GetAll() ([]domain.Voter, error) {
	return s.storage.Voters()
}

func (s *Voter) Get(id domain.VoterId) (domain.Voter, error) {
	if id <= 0 {
		return domain.Voter{}, invalidId()
	}

	voter, err := s.storage.Voter(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Voter{}, voterNotFound()
		}
		return domain.Voter{}, err
	}
	return voter, nil
}

// Update overwrites name and email unconditionally; the credential digest is
// replaced only when a non-blank password was supplied.
func (s *Voter) Update(id domain.VoterId, input domain.VoterInput) (domain.Voter, error) {
	if id <= 0 {
		return domain.Voter{}, invalidId()
	}
	// validation runs before any storage access
	if err := validation.ValidateVoterInput(input, true); err != nil {
		return domain.Voter{}, err
	}

	voter, err := s.storage.Voter(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Voter{}, voterNotFound()
		}
		return domain.Voter{}, err
	}

	voter.Name = input.Name
	voter.Email = strings.ToLower(input.Email)
	if strings.TrimSpace(input.Password) != "" {
		passHash, err := crypto.HashPassword(input.Password)
		if err != nil {
			logger.Log.Error("failed to hash password", "voter_id", id, "error", err)
			return domain.Voter{}, err
		}
		voter.PassHash = passHash
	}

	updated, err := s.storage.UpdateVoter(voter)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return domain.Voter{}, emailAlreadyExists()
		}
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Voter{}, voterNotFound()
		}
		return domain.Voter{}, err
	}
	return updated, nil
}

// Delete removes a voter record. The ordering is load-bearing: the record
// must exist before the oracle is consulted, and the oracle must authorize
// before anything is mutated. An oracle failure blocks deletion.
func (s *Voter) Delete(id domain.VoterId) error {
	if id <= 0 {
		return invalidId()
	}

	if _, err := s.storage.Voter(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return voterNotFound()
		}
		return err
	}

	hasVotes, err := s.oracle.HasVotes(id)
	if err != nil {
		logger.Log.Error("election status check failed", "voter_id", id, "error", err)
		return &internal_errors.ErrorWithStatusCode{
			Kind:       internal_errors.KindOracleUnavailable,
			Message:    "Election service unavailable",
			StatusCode: http.StatusServiceUnavailable,
		}
	}
	if hasVotes {
		return &internal_errors.ErrorWithStatusCode{
			Kind:       internal_errors.KindNotAuthorized,
			Message:    "Not authorized",
			StatusCode: http.StatusForbidden,
		}
	}

	if err := s.storage.DeleteVoter(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return voterNotFound()
		}
		return err
	}
	return nil
}

func invalidId() error {
	return &internal_errors.ErrorWithStatusCode{
		Kind:       internal_errors.KindInvalidId,
		Message:    "Invalid id",
		StatusCode: http.StatusBadRequest,
	}
}

func voterNotFound() error {
	return &internal_errors.ErrorWithStatusCode{
		Kind:       internal_errors.KindVoterNotFound,
		Message:    "Voter not found",
		StatusCode: http.StatusNotFound,
	}
}

func emailAlreadyExists() error {
	return &internal_errors.ErrorWithStatusCode{
		Kind:       internal_errors.KindEmailAlreadyExists,
		Message:    "Email already exists",
		StatusCode: http.StatusConflict,
	}
}
