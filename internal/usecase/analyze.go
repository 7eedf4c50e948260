// Package usecase contains application services that orchestrate the
// deterministic engine with the optional collaborators (advisor, store).
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/engine"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

// AnalyzeService extracts signals from resume text and scores them. The
// advisor, when reachable, may enrich the strengths/improvements lists; the
// deterministic engine output is always produced first and is the fallback.
type AnalyzeService struct {
	Engine  *engine.Engine
	Advisor domain.Advisor
}

// NewAnalyzeService constructs an AnalyzeService.
func NewAnalyzeService(e *engine.Engine, advisor domain.Advisor) AnalyzeService {
	return AnalyzeService{Engine: e, Advisor: advisor}
}

// Analyze sanitizes the input, extracts a SignalSet, and derives a Score.
// Binary payloads are rejected; empty text is a valid zero-signal result.
func (s AnalyzeService) Analyze(ctx context.Context, text, targetRole string) (domain.SignalSet, domain.Score, error) {
	if !textx.MostlyPrintable(text) {
		return domain.SignalSet{}, domain.Score{}, fmt.Errorf("%w: text is not decodable as text", domain.ErrInvalidInput)
	}
	clean := textx.SanitizeText(text)

	signals := s.Engine.Extract(clean)
	score := s.Engine.Score(signals, targetRole)

	if s.Advisor != nil && s.Advisor.Available() && clean != "" {
		s.enrich(ctx, clean, targetRole, &score)
	}
	return signals, score, nil
}

// enrich asks the advisor for a qualitative read and, only when the response
// parses and validates, swaps in its strengths/improvements. Failures of any
// kind leave the deterministic score untouched.
func (s AnalyzeService) enrich(ctx context.Context, text, targetRole string, score *domain.Score) {
	resp, err := s.Advisor.Advise(ctx, analyzePrompt(text, targetRole))
	if err != nil {
		slog.Warn("advisor unavailable, keeping deterministic score",
			slog.Any("error", err))
		return
	}
	advice, err := parseAdvisorAdvice(resp)
	if err != nil {
		slog.Warn("advisor response discarded",
			slog.Any("error", err),
			slog.Int("response_length", len(resp)))
		return
	}
	// The advisor's numeric score is advisory only; the deterministic value
	// stays authoritative so repeated calls stay reproducible.
	slog.Debug("advisor score received", slog.Float64("advisor_score", advice.Score))
	score.Strengths = clampList(advice.Strengths)
	score.Improvements = clampList(advice.Improvements)
}

// clampList enforces the same <=5 bound the engine applies. Lists shorter
// than 3 never reach here; parseAdvisorAdvice rejects them.
func clampList(entries []string) []string {
	if len(entries) > 5 {
		return entries[:5]
	}
	return entries
}
