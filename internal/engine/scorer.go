package engine

import (
	"fmt"
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

// Scoring constants. Thresholds are part of the compatibility contract and
// must not drift; see the tests for the expected fixture values.
const (
	baseScore = 60.0
	scoreCap  = 95.0 // strictly below the theoretical maximum

	bonusSkillBreadth = 10.0 // >5 distinct skills
	bonusSkillDepth   = 5.0  // >10 distinct skills
	bonusExperience   = 8.0  // any stated years of experience
	bonusMetrics      = 7.0  // quantifiable achievements present
	bonusVerbDensity  = 5.0  // >3 action verbs
	bonusLength       = 5.0  // >500 characters
	bonusLengthRich   = 5.0  // >800 characters

	shortTextThreshold = 200
	rolePenalty        = 2.0 // on the 0-10 scale
)

const (
	minListEntries = 3
	maxListEntries = 5
)

// Generic padding entries guarantee the >=3 invariant on strengths and
// improvements for every input, including an empty SignalSet.
var (
	fillerStrengths = []string{
		"Clear professional presentation",
		"Relevant background for the field",
		"Readable structure",
	}
	fillerImprovements = []string{
		"Tailor the resume to each role you apply for",
		"Lead with your strongest accomplishments",
		"Keep formatting consistent across sections",
	}
)

const noMajorErrors = "No major errors detected"

// Score maps a SignalSet (optionally plus a target role) to a quality score
// on the authoritative 0-100 scale. Bonuses are additive, order-independent,
// and each applies at most once; the final value is clamped to 95.
func (e *Engine) Score(signals domain.SignalSet, targetRole string) domain.Score {
	value := baseScore

	skillCount := len(signals.FoundSkills)
	if skillCount > 5 {
		value += bonusSkillBreadth
	}
	if skillCount > 10 {
		value += bonusSkillDepth
	}
	if signals.ExperienceYears > 0 {
		value += bonusExperience
	}
	if signals.HasMetrics {
		value += bonusMetrics
	}
	if len(signals.FoundVerbs) > 3 {
		value += bonusVerbDensity
	}
	if signals.TextLength > 500 {
		value += bonusLength
	}
	if signals.TextLength > 800 {
		value += bonusLengthRich
	}
	if value > scoreCap {
		value = scoreCap
	}
	if value < 0 {
		value = 0
	}

	return domain.Score{
		Value:        value,
		Scale:        domain.ScaleZeroToHundred,
		RoleFit:      roleFit(signals, targetRole),
		Strengths:    strengths(signals),
		Improvements: improvements(signals),
		Errors:       scoreErrors(signals),
	}
}

// OnScale converts a Score between the two exposed presentations. The 0-100
// scale is authoritative; 0-10 is value/10, so its effective cap is 9.5.
func OnScale(s domain.Score, scale domain.ScoreScale) domain.Score {
	if s.Scale == scale {
		return s
	}
	out := s
	out.Scale = scale
	switch scale {
	case domain.ScaleZeroToTen:
		out.Value = s.Value / 10.0
	case domain.ScaleZeroToHundred:
		out.Value = s.Value * 10.0
	}
	return out
}

// roleFit starts from the base score on the 0-10 scale and subtracts a fixed
// penalty when an engineering role is targeted with a thin skill list.
func roleFit(signals domain.SignalSet, targetRole string) float64 {
	fit := baseScore / 10.0
	role := textx.Fold(targetRole)
	if role == "" {
		return fit
	}
	engineering := strings.Contains(role, "developer") || strings.Contains(role, "engineer")
	if engineering && len(signals.FoundSkills) < 5 {
		fit -= rolePenalty
	}
	return fit
}

func strengths(signals domain.SignalSet) []string {
	out := []string{}
	if n := len(signals.FoundSkills); n > 5 {
		out = append(out, fmt.Sprintf("%d technologies mentioned", n))
	}
	if signals.HasMetrics {
		out = append(out, "Quantifiable achievements back up the claims")
	}
	if len(signals.FoundVerbs) > 3 {
		out = append(out, "Strong action verbs throughout")
	}
	if signals.ExperienceYears > 0 {
		out = append(out, fmt.Sprintf("%d years of experience highlighted", signals.ExperienceYears))
	}
	if len(signals.FoundSoftSkills) > 2 {
		out = append(out, "Soft skills are called out explicitly")
	}
	if signals.TextLength > 800 {
		out = append(out, "Comprehensive level of detail")
	}
	return padAndCap(out, fillerStrengths)
}

func improvements(signals domain.SignalSet) []string {
	out := []string{}
	if !signals.HasMetrics {
		out = append(out, "Add quantifiable achievements (percentages, multipliers, counts)")
	}
	if len(signals.FoundSkills) <= 5 {
		out = append(out, "Mention more of the technologies you have worked with")
	}
	if len(signals.FoundVerbs) <= 3 {
		out = append(out, "Open bullet points with strong action verbs")
	}
	if signals.ExperienceYears == 0 {
		out = append(out, "State your years of experience explicitly")
	}
	if signals.TextLength <= 500 {
		out = append(out, "Expand on responsibilities and project outcomes")
	}
	if len(signals.FoundSoftSkills) == 0 {
		out = append(out, "Highlight soft skills such as leadership or communication")
	}
	return padAndCap(out, fillerImprovements)
}

func scoreErrors(signals domain.SignalSet) []string {
	out := []string{}
	if signals.TextLength < shortTextThreshold {
		out = append(out, "Resume text is very short; most sections appear to be missing")
	}
	if !signals.HasMetrics {
		out = append(out, "No measurable outcomes found")
	}
	if len(signals.FoundVerbs) < 2 {
		out = append(out, "Few or no strong action verbs detected")
	}
	if len(out) == 0 {
		out = append(out, noMajorErrors)
	}
	return out
}

// padAndCap truncates to 5 entries, then pads from the fillers until the
// list holds at least 3.
func padAndCap(entries, fillers []string) []string {
	if len(entries) > maxListEntries {
		entries = entries[:maxListEntries]
	}
	for _, f := range fillers {
		if len(entries) >= minListEntries {
			break
		}
		entries = append(entries, f)
	}
	return entries
}
