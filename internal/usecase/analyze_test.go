package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/engine"
	"github.com/fairyhunter13/resume-analyzer/internal/engine/lexicon"
)

const sampleResume = `Senior engineer with 8 years of experience. Led a team that
built Python and Go services on Kubernetes and improved deployment time by 60%.`

var validAdvice = `SCORE: 88
STRENGTHS:
- Advisor strength one
- Advisor strength two
- Advisor strength three
IMPROVEMENTS:
- Advisor improvement one
- Advisor improvement two
- Advisor improvement three
`

func newAnalyzeService(advisor domain.Advisor) AnalyzeService {
	return NewAnalyzeService(engine.New(lexicon.Default()), advisor)
}

func TestAnalyze_RejectsBinaryPayload(t *testing.T) {
	svc := newAnalyzeService(&fakeAdvisor{})
	_, _, err := svc.Analyze(context.Background(), "\x00\x01\x02\x03\x04\x05\x06\x07", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalyze_EmptyTextIsValid(t *testing.T) {
	advisor := &fakeAdvisor{available: true, response: validAdvice}
	svc := newAnalyzeService(advisor)

	signals, score, err := svc.Analyze(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, signals.FoundSkills)
	assert.Equal(t, 60.0, score.Value)
	// Nothing to enrich on empty text.
	assert.Zero(t, advisor.callCount())
}

func TestAnalyze_DeterministicWithoutAdvisor(t *testing.T) {
	svc := newAnalyzeService(&fakeAdvisor{available: false})

	_, first, err := svc.Analyze(context.Background(), sampleResume, "backend engineer")
	require.NoError(t, err)
	_, second, err := svc.Analyze(context.Background(), sampleResume, "backend engineer")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, domain.ScaleZeroToHundred, first.Scale)
}

func TestAnalyze_AdvisorEnrichesLists(t *testing.T) {
	plain := newAnalyzeService(&fakeAdvisor{available: false})
	_, baseline, err := plain.Analyze(context.Background(), sampleResume, "")
	require.NoError(t, err)

	enriched := newAnalyzeService(&fakeAdvisor{available: true, response: validAdvice})
	_, score, err := enriched.Analyze(context.Background(), sampleResume, "")
	require.NoError(t, err)

	// The numeric score stays the deterministic one; only the lists swap.
	assert.Equal(t, baseline.Value, score.Value)
	assert.Equal(t, []string{"Advisor strength one", "Advisor strength two", "Advisor strength three"}, score.Strengths)
	assert.Equal(t, []string{"Advisor improvement one", "Advisor improvement two", "Advisor improvement three"}, score.Improvements)
}

func TestAnalyze_AdvisorFailureKeepsDeterministicScore(t *testing.T) {
	plain := newAnalyzeService(&fakeAdvisor{available: false})
	_, baseline, err := plain.Analyze(context.Background(), sampleResume, "")
	require.NoError(t, err)

	tests := []struct {
		name    string
		advisor *fakeAdvisor
	}{
		{"unreachable", &fakeAdvisor{available: true, err: domain.ErrAdvisorUnavailable}},
		{"malformed response", &fakeAdvisor{available: true, response: "no structure at all"}},
		{"too few entries", &fakeAdvisor{available: true, response: "STRENGTHS:\n- one\nIMPROVEMENTS:\n- one"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newAnalyzeService(tc.advisor)
			_, score, err := svc.Analyze(context.Background(), sampleResume, "")
			require.NoError(t, err)
			assert.Equal(t, baseline, score)
		})
	}
}

func TestAnalyze_AdvisorListsClampedAtFive(t *testing.T) {
	long := `SCORE: 90
STRENGTHS:
- s1
- s2
- s3
- s4
- s5
- s6
- s7
IMPROVEMENTS:
- i1
- i2
- i3
- i4
- i5
- i6
`
	svc := newAnalyzeService(&fakeAdvisor{available: true, response: long})
	_, score, err := svc.Analyze(context.Background(), sampleResume, "")
	require.NoError(t, err)
	assert.Len(t, score.Strengths, 5)
	assert.Len(t, score.Improvements, 5)
}
