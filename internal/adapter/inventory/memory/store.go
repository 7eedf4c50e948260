// Package memory provides an in-memory skill inventory store keyed by user.
// Persistence is out of scope for this service; the domain.SkillStore port
// leaves room for a durable implementation behind the same interface.
package memory

import (
	"context"
	"sync"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// Store implements domain.SkillStore. Safe for concurrent use; note that
// List-then-Insert is still not atomic across calls, which is why the sync
// service serializes per user.
type Store struct {
	mu     sync.RWMutex
	byUser map[string][]domain.SkillEntry
}

// New constructs an empty Store.
func New() *Store {
	return &Store{byUser: make(map[string][]domain.SkillEntry)}
}

// ListByUser returns a copy of the user's inventory in insertion order.
// An unknown user is an empty inventory, not an error.
func (s *Store) ListByUser(_ context.Context, userID string) ([]domain.SkillEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.byUser[userID]
	out := make([]domain.SkillEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Insert appends an entry to the user's inventory.
func (s *Store) Insert(_ context.Context, userID string, e domain.SkillEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = append(s.byUser[userID], e)
	return nil
}

// Seed replaces a user's inventory wholesale. Test and CLI helper.
func (s *Store) Seed(userID string, entries []domain.SkillEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]domain.SkillEntry, len(entries))
	copy(cp, entries)
	s.byUser[userID] = cp
}
