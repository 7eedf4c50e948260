package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/engine"
	"github.com/fairyhunter13/resume-analyzer/internal/engine/lexicon"
)

const sampleJob = "We need python and docker experience in production"

func newMatchService(store domain.SkillStore, advisor domain.Advisor) MatchService {
	return NewMatchService(engine.New(lexicon.Default()), store, advisor)
}

func seedStore(t *testing.T, store *fakeStore, userID string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, store.Insert(context.Background(), userID, domain.SkillEntry{Name: n}))
	}
}

func TestMatch_RequiresUserID(t *testing.T) {
	svc := newMatchService(newFakeStore(), &fakeAdvisor{})
	_, err := svc.Match(context.Background(), "", sampleJob)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMatch_RejectsBinaryJobDescription(t *testing.T) {
	svc := newMatchService(newFakeStore(), &fakeAdvisor{})
	_, err := svc.Match(context.Background(), "u1", "\x00\x01\x02\x03\x04\x05")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMatch_HappyPathWithoutAdvisor(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, "u1", "python")
	svc := newMatchService(store, &fakeAdvisor{available: false})

	result, err := svc.Match(context.Background(), "u1", sampleJob)
	require.NoError(t, err)
	assert.Equal(t, 50, result.MatchScorePercent)
	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, []string{"Docker"}, result.MissingSkills)
	require.Len(t, result.Recommendations, 3)
}

func TestMatch_StoreFailureDegradesToEmptyInventory(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("connection refused")
	svc := newMatchService(store, &fakeAdvisor{})

	result, err := svc.Match(context.Background(), "u1", sampleJob)
	require.NoError(t, err)
	assert.Equal(t, 0, result.MatchScorePercent)
	assert.Empty(t, result.MatchedSkills)
	require.Len(t, result.Recommendations, 1)
}

func TestMatch_AdvisorRecommendationsUsedWhenValid(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, "u1", "python")
	advisor := &fakeAdvisor{available: true, response: "1. Learn Docker hands-on\n2. Ship a containerized service\n3. Take a CKA course"}
	svc := newMatchService(store, advisor)

	result, err := svc.Match(context.Background(), "u1", sampleJob)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Learn Docker hands-on",
		"Ship a containerized service",
		"Take a CKA course",
	}, result.Recommendations)
	assert.Equal(t, 1, advisor.callCount())
}

func TestMatch_AdvisorFailureKeepsFallback(t *testing.T) {
	tests := []struct {
		name    string
		advisor *fakeAdvisor
	}{
		{"unreachable", &fakeAdvisor{available: true, err: domain.ErrAdvisorUnavailable}},
		{"wrong count", &fakeAdvisor{available: true, response: "1. only one"}},
		{"out of order", &fakeAdvisor{available: true, response: "1. a\n3. b\n2. c"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			seedStore(t, store, "u1", "python")
			svc := newMatchService(store, tc.advisor)

			result, err := svc.Match(context.Background(), "u1", sampleJob)
			require.NoError(t, err)
			require.Len(t, result.Recommendations, 3)
			assert.Contains(t, result.Recommendations[0], "Docker")
		})
	}
}

func TestMatch_AdvisorSkippedWhenNothingMissing(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, "u1", "python", "docker")
	advisor := &fakeAdvisor{available: true, response: "1. a\n2. b\n3. c"}
	svc := newMatchService(store, advisor)

	result, err := svc.Match(context.Background(), "u1", "python and docker only")
	require.NoError(t, err)
	assert.Equal(t, 100, result.MatchScorePercent)
	assert.Empty(t, result.MissingSkills)
	assert.Zero(t, advisor.callCount())
}

func TestMatch_DoesNotMutateInventory(t *testing.T) {
	store := newFakeStore()
	seedStore(t, store, "u1", "python")
	svc := newMatchService(store, &fakeAdvisor{})

	_, err := svc.Match(context.Background(), "u1", sampleJob)
	require.NoError(t, err)

	entries, err := store.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "python", entries[0].Name)
}
