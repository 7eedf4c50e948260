package usecase

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

// structuredAdvice is the validated shape of an advisor analysis response.
type structuredAdvice struct {
	Score        float64
	Strengths    []string
	Improvements []string
}

var (
	scoreLineRe = regexp.MustCompile(`(?i)^score\s*[:=]\s*([0-9]+(?:\.[0-9]+)?)`)
	bulletRe    = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*(.+)$`)
	rankedRe    = regexp.MustCompile(`^\s*(\d+)[.)]\s*(\S.*)$`)
)

// parseAdvisorAdvice extracts SCORE / STRENGTHS / IMPROVEMENTS sections from
// an advisor's free-text response. The format is untrusted and fragile by
// construction, so all parsing lives here; callers fall back to the
// deterministic output on any error.
func parseAdvisorAdvice(text string) (structuredAdvice, error) {
	advice := structuredAdvice{}
	section := ""
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if m := scoreLineRe.FindStringSubmatch(line); m != nil {
			v, err := strconv.ParseFloat(m[1], 64)
			if err == nil {
				advice.Score = v
			}
			section = ""
			continue
		}
		upper := strings.ToUpper(strings.TrimSuffix(line, ":"))
		switch upper {
		case "STRENGTHS", "STRENGTHS SECTION":
			section = "strengths"
			continue
		case "IMPROVEMENTS", "AREAS FOR IMPROVEMENT", "IMPROVEMENTS SECTION":
			section = "improvements"
			continue
		}
		m := bulletRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry := strings.TrimSpace(m[1])
		if entry == "" {
			continue
		}
		switch section {
		case "strengths":
			advice.Strengths = append(advice.Strengths, entry)
		case "improvements":
			advice.Improvements = append(advice.Improvements, entry)
		}
	}
	if len(advice.Strengths) < 3 || len(advice.Improvements) < 3 {
		return structuredAdvice{}, fmt.Errorf("%w: strengths=%d improvements=%d",
			domain.ErrAdvisorMalformed, len(advice.Strengths), len(advice.Improvements))
	}
	return advice, nil
}

// parseRankedRecommendations validates that an advisor returned exactly 3
// non-empty entries, each beginning with a rank marker ("1.", "2)", ...), and
// returns them with the markers stripped.
func parseRankedRecommendations(text string) ([]string, error) {
	out := []string{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m := rankedRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rank, err := strconv.Atoi(m[1])
		if err != nil || rank != len(out)+1 {
			return nil, fmt.Errorf("%w: rank marker %q out of order", domain.ErrAdvisorMalformed, m[1])
		}
		out = append(out, strings.TrimSpace(m[2]))
	}
	if len(out) != 3 {
		return nil, fmt.Errorf("%w: expected 3 recommendations, got %d", domain.ErrAdvisorMalformed, len(out))
	}
	return out, nil
}
