package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

func TestStore_UnknownUserIsEmpty(t *testing.T) {
	s := New()
	entries, err := s.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_InsertAndListPreserveOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, name := range []string{"python", "docker", "kafka"} {
		require.NoError(t, s.Insert(ctx, "u1", domain.SkillEntry{Name: name}))
	}

	entries, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "python", entries[0].Name)
	assert.Equal(t, "kafka", entries[2].Name)
}

func TestStore_UsersAreIsolated(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, "u1", domain.SkillEntry{Name: "python"}))
	require.NoError(t, s.Insert(ctx, "u2", domain.SkillEntry{Name: "rust"}))

	u1, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, u1, 1)
	assert.Equal(t, "python", u1[0].Name)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, "u1", domain.SkillEntry{Name: "python"}))

	entries, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	entries[0].Name = "mutated"

	again, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "python", again[0].Name)
}

func TestStore_SeedReplaces(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.Insert(ctx, "u1", domain.SkillEntry{Name: "old"}))

	s.Seed("u1", []domain.SkillEntry{{Name: "new"}})
	entries, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].Name)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Insert(ctx, "u1", domain.SkillEntry{Name: fmt.Sprintf("skill-%d", i)})
			_, _ = s.ListByUser(ctx, "u1")
		}(i)
	}
	wg.Wait()

	entries, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}
