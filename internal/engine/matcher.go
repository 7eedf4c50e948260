package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

const maxMissingSkills = 10

// emptyInventoryRecommendation is the single recommendation returned by the
// empty-inventory short circuit.
const emptyInventoryRecommendation = "Add skills to your inventory first so job matching has something to compare against"

// Match compares a user's skill inventory against a job description. It is
// pure: inventory mutation happens only through an explicit, separate sync
// call, never here.
func (e *Engine) Match(inventory []domain.SkillEntry, jobDescription string) domain.MatchResult {
	if len(inventory) == 0 {
		// Distinct terminal branch, not a degenerate case of the formula.
		return domain.MatchResult{
			MatchScorePercent: 0,
			MatchedSkills:     []string{},
			MissingSkills:     []string{},
			Recommendations:   []string{emptyInventoryRecommendation},
		}
	}

	folded := textx.Fold(jobDescription)

	matched := []string{}
	owned := make(map[string]struct{}, len(inventory))
	for _, entry := range inventory {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		foldedName := textx.Fold(name)
		owned[foldedName] = struct{}{}
		if e.contains(folded, foldedName) {
			matched = append(matched, name)
		}
	}

	missing := e.missingSkills(folded, owned)

	result := domain.MatchResult{
		MatchScorePercent: matchPercent(len(matched), len(missing)),
		MatchedSkills:     matched,
		MissingSkills:     missing,
		Recommendations:   e.FallbackRecommendations(missing),
	}
	return result
}

type missingCandidate struct {
	display  string
	firstIdx int
	declIdx  int
}

// missingSkills returns lexicon technical terms present in the job text but
// absent from the inventory, ranked by first occurrence in the job text with
// lexicon declaration order as the stable tie-break. Capped at 10.
func (e *Engine) missingSkills(foldedJob string, owned map[string]struct{}) []string {
	candidates := []missingCandidate{}
	for i, t := range e.lex.Technical {
		if _, have := owned[t.Term]; have {
			continue
		}
		idx := strings.Index(foldedJob, t.Term)
		if idx < 0 {
			continue
		}
		if e.strict && !e.contains(foldedJob, t.Term) {
			continue
		}
		candidates = append(candidates, missingCandidate{display: t.Display, firstIdx: idx, declIdx: i})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].firstIdx != candidates[b].firstIdx {
			return candidates[a].firstIdx < candidates[b].firstIdx
		}
		return candidates[a].declIdx < candidates[b].declIdx
	})
	if len(candidates) > maxMissingSkills {
		candidates = candidates[:maxMissingSkills]
	}
	out := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.display]; dup {
			continue
		}
		seen[c.display] = struct{}{}
		out = append(out, c.display)
	}
	return out
}

// matchPercent rounds half-up; 0 when nothing matched and nothing is missing.
func matchPercent(matched, missing int) int {
	denom := matched + missing
	if denom == 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(denom)))
}

// FallbackRecommendations is the deterministic 3-entry template used when no
// advisor is available or its response fails validation.
func (e *Engine) FallbackRecommendations(missing []string) []string {
	first := "Deepen your expertise in the skills you already have"
	if len(missing) > 0 {
		first = fmt.Sprintf("Learn %s to close the most visible gap", missing[0])
	}
	return []string{
		first,
		"Build projects using the technologies this role requires",
		"Get certified in the skills you are missing",
	}
}
