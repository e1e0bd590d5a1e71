package session

import (
	"sync"
	"time"

	"github.com/ulbra-election/voter/internal/domain"
)

type entry struct {
	voterId   domain.VoterId
	expiresAt time.Time // zero means no expiry
}

type Memory struct {
	mu     sync.RWMutex
	tokens map[domain.SessionToken]entry
	ttl    time.Duration
}

// NewMemory creates an in-memory registry. ttl of 0 disables expiry.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		tokens: make(map[domain.SessionToken]entry),
		ttl:    ttl,
	}
}

func (m *Memory) Save(token domain.SessionToken, voterId domain.VoterId) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := entry{voterId: voterId}
	if m.ttl > 0 {
		e.expiresAt = time.Now().Add(m.ttl)
	}
	m.tokens[token] = e
	return nil
}

func (m *Memory) Resolve(token domain.SessionToken) (domain.VoterId, error) {
	m.mu.RLock()
	e, ok := m.tokens[token]
	m.mu.RUnlock()

	if !ok {
		return 0, ErrTokenNotFound
	}
	if !e.expiresAt.IsZero() && e.expiresAt.Before(time.Now()) {
		m.deleteIfExpiredAt(token, e.expiresAt)
		return 0, ErrTokenNotFound
	}
	return e.voterId, nil
}

// deleteIfExpiredAt lazily cleans up a token seen expired at seenExpiry. The
// entry is re-checked under the write lock: a concurrent Save may have
// refreshed the token since the read, and a refreshed token must survive.
func (m *Memory) deleteIfExpiredAt(token domain.SessionToken, seenExpiry time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, ok := m.tokens[token]; ok && cur.expiresAt.Equal(seenExpiry) {
		delete(m.tokens, token)
	}
}

func (m *Memory) Delete(token domain.SessionToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, token)
	return nil
}
