package usecase

import (
	"context"
	"sync"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// fakeAdvisor records prompts and plays back a canned response or error.
type fakeAdvisor struct {
	available bool
	response  string
	err       error

	mu      sync.Mutex
	calls   int
	prompts []string
}

func (f *fakeAdvisor) Available() bool { return f.available }

func (f *fakeAdvisor) Advise(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeAdvisor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeStore is an in-memory SkillStore with injectable failures.
type fakeStore struct {
	mu        sync.Mutex
	byUser    map[string][]domain.SkillEntry
	listErr   error
	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byUser: make(map[string][]domain.SkillEntry)}
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]domain.SkillEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.SkillEntry, len(f.byUser[userID]))
	copy(out, f.byUser[userID])
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, userID string, e domain.SkillEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.byUser[userID] = append(f.byUser[userID], e)
	return nil
}
