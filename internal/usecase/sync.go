package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

// SyncService reconciles discovered skill names against a user's inventory.
// This is the only operation with an externally visible side effect. The
// store's read-then-insert pattern is not atomic, so syncs for the same user
// are serialized with a keyed mutex.
type SyncService struct {
	Store domain.SkillStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSyncService constructs a SyncService.
func NewSyncService(store domain.SkillStore) *SyncService {
	return &SyncService{Store: store, locks: make(map[string]*sync.Mutex)}
}

func (s *SyncService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// SyncSkills inserts inventory entries for discovered names that have no
// case-insensitive match yet, preserving the discovered casing and the input
// order. Duplicates within the input create one entry. Calling twice with
// the same input creates nothing on the second call.
//
// Store write failures propagate: a failed skill creation is a
// correctness-relevant write, not a derived computation.
func (s *SyncService) SyncSkills(ctx context.Context, userID string, discovered []string) ([]domain.SkillEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidInput)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.Store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("op=sync.list: %w", err)
	}
	known := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		known[textx.Fold(e.Name)] = struct{}{}
	}

	created := []domain.SkillEntry{}
	for _, raw := range discovered {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		folded := textx.Fold(name)
		if _, dup := known[folded]; dup {
			continue
		}
		entry := domain.SkillEntry{
			ID:        uuid.NewString(),
			Name:      name,
			Progress:  50,
			Goal:      "Master " + name,
			Status:    domain.SkillInProgress,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.Store.Insert(ctx, userID, entry); err != nil {
			return created, fmt.Errorf("op=sync.insert skill=%s: %w", name, err)
		}
		known[folded] = struct{}{}
		created = append(created, entry)
	}
	return created, nil
}

// ListSkills returns the user's full inventory.
func (s *SyncService) ListSkills(ctx context.Context, userID string) ([]domain.SkillEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", domain.ErrInvalidInput)
	}
	return s.Store.ListByUser(ctx, userID)
}
