package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

func TestParseAdvisorAdvice_Valid(t *testing.T) {
	resp := `SCORE: 82.5
STRENGTHS:
- Strong backend fundamentals
* Clear quantified impact
1. Good progression of responsibility
IMPROVEMENTS:
- Add a summary section
- Quantify the remaining bullet points
- Trim the oldest roles
`
	advice, err := parseAdvisorAdvice(resp)
	require.NoError(t, err)
	assert.Equal(t, 82.5, advice.Score)
	assert.Equal(t, []string{
		"Strong backend fundamentals",
		"Clear quantified impact",
		"Good progression of responsibility",
	}, advice.Strengths)
	assert.Len(t, advice.Improvements, 3)
}

func TestParseAdvisorAdvice_SectionHeaderVariants(t *testing.T) {
	resp := `score = 70
strengths
- one strength
- another strength
- a third strength
AREAS FOR IMPROVEMENT:
- first
- second
- third
`
	advice, err := parseAdvisorAdvice(resp)
	require.NoError(t, err)
	assert.Equal(t, 70.0, advice.Score)
	assert.Len(t, advice.Strengths, 3)
	assert.Len(t, advice.Improvements, 3)
}

func TestParseAdvisorAdvice_TooFewEntries(t *testing.T) {
	resp := `SCORE: 90
STRENGTHS:
- only one
IMPROVEMENTS:
- first
- second
- third
`
	_, err := parseAdvisorAdvice(resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAdvisorMalformed)
}

func TestParseAdvisorAdvice_ProseIgnored(t *testing.T) {
	resp := `Here is my assessment of the resume.
SCORE: 75
STRENGTHS:
Some introductory prose without a bullet marker.
- real entry one
- real entry two
- real entry three
IMPROVEMENTS:
- a
- b
- c
`
	advice, err := parseAdvisorAdvice(resp)
	require.NoError(t, err)
	assert.Equal(t, []string{"real entry one", "real entry two", "real entry three"}, advice.Strengths)
}

func TestParseRankedRecommendations_Valid(t *testing.T) {
	resp := `Sure, here are the recommendations:

1. Complete a Kubernetes certification
2) Build a side project with Terraform
3. Contribute to an open source Go service
`
	recs, err := parseRankedRecommendations(resp)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Complete a Kubernetes certification",
		"Build a side project with Terraform",
		"Contribute to an open source Go service",
	}, recs)
}

func TestParseRankedRecommendations_Invalid(t *testing.T) {
	tests := []struct {
		name string
		resp string
	}{
		{"too few", "1. only\n2. two"},
		{"too many", "1. a\n2. b\n3. c\n4. d"},
		{"out of order", "1. a\n3. c\n2. b"},
		{"no rank markers", "- a\n- b\n- c"},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseRankedRecommendations(tc.resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrAdvisorMalformed)
		})
	}
}
