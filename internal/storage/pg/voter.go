package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ulbra-election/voter/internal/domain"
	internal_storage "github.com/ulbra-election/voter/internal/storage"
)

// =========================================================================
// Public Methods (satisfy the service.VoterStorage interface)
// =========================================================================

// SaveVoter inserts a new voter record and returns it with the assigned id.
// A duplicate email surfaces as internal_storage.ErrDuplicateEmail.
func (s *Storage) SaveVoter(voter domain.Voter) (domain.Voter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var saved domain.Voter
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = s.saveVoter(tx, voter)
		return err
	})
	return saved, err
}

// Voters returns all voter records in insertion order.
func (s *Storage) Voters() ([]domain.Voter, error) {
	return s.voters(s.db)
}

// Voter fetches a single voter record by id.
func (s *Storage) Voter(id domain.VoterId) (domain.Voter, error) {
	return s.voter(s.db, id)
}

// VoterByEmail fetches a single voter record by email.
func (s *Storage) VoterByEmail(email domain.Email) (domain.Voter, error) {
	return s.voterByEmail(s.db, email)
}

// UpdateVoter overwrites name, email and credential digest of an existing
// record. Missing record surfaces as internal_storage.ErrNotFound, duplicate email as
// internal_storage.ErrDuplicateEmail.
func (s *Storage) UpdateVoter(voter domain.Voter) (domain.Voter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var updated domain.Voter
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		updated, err = s.updateVoter(tx, voter)
		return err
	})
	return updated, err
}

// DeleteVoter removes a voter record by id.
func (s *Storage) DeleteVoter(id domain.VoterId) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteVoter(tx, id)
	})
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func (s *Storage) saveVoter(q Querier, voter domain.Voter) (domain.Voter, error) {
	err := q.QueryRow(`
        INSERT INTO voters(name, email, password_hash)
        VALUES($1, $2, $3)
        RETURNING id, (created_at at time zone 'utc')`,
		voter.Name, voter.Email, voter.PassHash,
	).Scan(&voter.Id, &voter.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Voter{}, internal_storage.ErrDuplicateEmail
		}
		return domain.Voter{}, fmt.Errorf("failed to insert voter: %w", err)
	}
	return voter, nil
}

func (s *Storage) voters(q Querier) ([]domain.Voter, error) {
	rows, err := q.Query(`
        SELECT id, name, email, password_hash, (created_at at time zone 'utc')
        FROM voters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	var voters []domain.Voter
	for rows.Next() {
		var v domain.Voter
		if err := rows.Scan(&v.Id, &v.Name, &v.Email, &v.PassHash, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voters: %w", err)
	}
	return voters, nil
}

func (s *Storage) voter(q Querier, id domain.VoterId) (domain.Voter, error) {
	var v domain.Voter
	err := q.QueryRow(`
        SELECT id, name, email, password_hash, (created_at at time zone 'utc')
        FROM voters WHERE id = $1`, id,
	).Scan(&v.Id, &v.Name, &v.Email, &v.PassHash, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Voter{}, internal_storage.ErrNotFound
		}
		return domain.Voter{}, fmt.Errorf("failed to query voter: %w", err)
	}
	return v, nil
}

func (s *Storage) voterByEmail(q Querier, email domain.Email) (domain.Voter, error) {
	var v domain.Voter
	err := q.QueryRow(`
        SELECT id, name, email, password_hash, (created_at at time zone 'utc')
        FROM voters WHERE email = $1`, email,
	).Scan(&v.Id, &v.Name, &v.Email, &v.PassHash, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Voter{}, internal_storage.ErrNotFound
		}
		return domain.Voter{}, fmt.Errorf("failed to query voter by email: %w", err)
	}
	return v, nil
}

func (s *Storage) updateVoter(q Querier, voter domain.Voter) (domain.Voter, error) {
	result, err := q.Exec(`
        UPDATE voters SET name = $1, email = $2, password_hash = $3
        WHERE id = $4`,
		voter.Name, voter.Email, voter.PassHash, voter.Id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Voter{}, internal_storage.ErrDuplicateEmail
		}
		return domain.Voter{}, fmt.Errorf("failed to update voter: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Voter{}, fmt.Errorf("failed to check affected rows for voter update: %w", err)
	}
	if rowsAffected == 0 {
		return domain.Voter{}, internal_storage.ErrNotFound
	}
	return s.voter(q, voter.Id)
}

func (s *Storage) deleteVoter(q Querier, id domain.VoterId) error {
	result, err := q.Exec("DELETE FROM voters WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete voter: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for voter deletion: %w", err)
	}
	if rowsDeleted == 0 {
		return internal_storage.ErrNotFound
	}
	return nil
}
