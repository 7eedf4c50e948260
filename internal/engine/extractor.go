package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

var (
	// "<n> years", "<n> yrs", "<n>+ years"
	experienceRe = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)
	// "3x", "10x", "2.5x" multiplier claims
	multiplierRe = regexp.MustCompile(`\b\d+(?:\.\d+)?x\b`)
)

// trendVerbs flag quantifiable-achievement language even without digits.
var trendVerbs = []string{"increased", "decreased", "improved", "reduced"}

// Extract scans normalized text and produces a SignalSet. It never fails:
// empty or very short text yields an all-empty, all-zero SignalSet.
func (e *Engine) Extract(text string) domain.SignalSet {
	folded := textx.Fold(text)

	signals := domain.SignalSet{
		FoundSkills:     []string{},
		FoundSoftSkills: []string{},
		FoundVerbs:      []string{},
		TextLength:      len(text),
	}
	if folded == "" {
		return signals
	}

	seen := make(map[string]struct{})
	for _, t := range e.lex.Technical {
		if !e.contains(folded, t.Term) {
			continue
		}
		if _, dup := seen[t.Display]; dup {
			continue
		}
		seen[t.Display] = struct{}{}
		signals.FoundSkills = append(signals.FoundSkills, t.Display)
	}
	seen = make(map[string]struct{})
	for _, t := range e.lex.Soft {
		if !e.contains(folded, t.Term) {
			continue
		}
		if _, dup := seen[t.Display]; dup {
			continue
		}
		seen[t.Display] = struct{}{}
		signals.FoundSoftSkills = append(signals.FoundSoftSkills, t.Display)
	}
	for _, v := range e.lex.ActionVerb {
		if e.contains(folded, v) {
			signals.FoundVerbs = append(signals.FoundVerbs, v)
		}
	}

	signals.HasMetrics = hasMetrics(folded)
	signals.ExperienceYears = maxExperienceYears(folded)
	return signals
}

func hasMetrics(folded string) bool {
	if strings.Contains(folded, "%") {
		return true
	}
	if multiplierRe.MatchString(folded) {
		return true
	}
	for _, v := range trendVerbs {
		if strings.Contains(folded, v) {
			return true
		}
	}
	return false
}

// maxExperienceYears takes the maximum of all "<n> years|yrs" matches,
// defaulting to 0 when none are present.
func maxExperienceYears(folded string) int {
	max := 0
	for _, m := range experienceRe.FindAllStringSubmatch(folded, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
