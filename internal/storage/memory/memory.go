// Package memory is an in-memory voter store used in tests and local
// development. It mirrors the postgres store's contract, including the email
// uniqueness constraint.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/ulbra-election/voter/internal/domain"
	"github.com/ulbra-election/voter/internal/storage"
)

type Storage struct {
	mu     sync.RWMutex
	voters map[domain.VoterId]domain.Voter
	nextId domain.VoterId
}

func New() *Storage {
	return &Storage{
		voters: make(map[domain.VoterId]domain.Voter),
		nextId: 1,
	}
}

func (s *Storage) SaveVoter(voter domain.Voter) (domain.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(voter.Email, 0) {
		return domain.Voter{}, storage.ErrDuplicateEmail
	}

	voter.Id = s.nextId
	voter.CreatedAt = time.Now().UTC()
	s.nextId++
	s.voters[voter.Id] = voter
	return voter, nil
}

func (s *Storage) Voters() ([]domain.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	voters := make([]domain.Voter, 0, len(s.voters))
	for _, v := range s.voters {
		voters = append(voters, v)
	}
	// ids are monotonic, so this is insertion order
	sort.Slice(voters, func(i, j int) bool { return voters[i].Id < voters[j].Id })
	return voters, nil
}

func (s *Storage) Voter(id domain.VoterId) (domain.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	voter, ok := s.voters[id]
	if !ok {
		return domain.Voter{}, storage.ErrNotFound
	}
	return voter, nil
}

func (s *Storage) VoterByEmail(email domain.Email) (domain.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.voters {
		if v.Email == email {
			return v, nil
		}
	}
	return domain.Voter{}, storage.ErrNotFound
}

func (s *Storage) UpdateVoter(voter domain.Voter) (domain.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.voters[voter.Id]
	if !ok {
		return domain.Voter{}, storage.ErrNotFound
	}
	if s.emailTaken(voter.Email, voter.Id) {
		return domain.Voter{}, storage.ErrDuplicateEmail
	}

	voter.CreatedAt = existing.CreatedAt
	s.voters[voter.Id] = voter
	return voter, nil
}

func (s *Storage) DeleteVoter(id domain.VoterId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.voters[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.voters, id)
	return nil
}

// emailTaken must be called with the lock held. self excludes the record
// being updated from the check.
func (s *Storage) emailTaken(email domain.Email, self domain.VoterId) bool {
	for _, v := range s.voters {
		if v.Email == email && v.Id != self {
			return true
		}
	}
	return false
}
