package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/engine"
	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

// MatchService compares a user's skill inventory against a job description.
// It never mutates the inventory; synchronization is a separate, explicit
// operation on SyncService.
type MatchService struct {
	Engine  *engine.Engine
	Store   domain.SkillStore
	Advisor domain.Advisor
}

// NewMatchService constructs a MatchService.
func NewMatchService(e *engine.Engine, store domain.SkillStore, advisor domain.Advisor) MatchService {
	return MatchService{Engine: e, Store: store, Advisor: advisor}
}

// Match loads the user's inventory and produces a MatchResult. An unreachable
// store degrades to the empty-inventory branch instead of failing the match;
// advisor recommendations are used only when they validate.
func (s MatchService) Match(ctx context.Context, userID, jobDescription string) (domain.MatchResult, error) {
	if userID == "" {
		return domain.MatchResult{}, fmt.Errorf("%w: user id required", domain.ErrInvalidInput)
	}
	if !textx.MostlyPrintable(jobDescription) {
		return domain.MatchResult{}, fmt.Errorf("%w: job description is not decodable as text", domain.ErrInvalidInput)
	}
	job := textx.SanitizeText(jobDescription)

	inventory, err := s.Store.ListByUser(ctx, userID)
	if err != nil {
		slog.Warn("skill store unreachable, matching with empty inventory",
			slog.String("user_id", userID), slog.Any("error", err))
		inventory = nil
	}

	result := s.Engine.Match(inventory, job)

	if len(inventory) > 0 && len(result.MissingSkills) > 0 && s.Advisor != nil && s.Advisor.Available() {
		if recs := s.advisorRecommendations(ctx, job, result.MissingSkills); recs != nil {
			result.Recommendations = recs
		}
	}
	return result, nil
}

// advisorRecommendations returns validated advisor output or nil when the
// advisor fails or responds out of format; callers keep the fallback then.
func (s MatchService) advisorRecommendations(ctx context.Context, job string, missing []string) []string {
	resp, err := s.Advisor.Advise(ctx, matchPrompt(job, missing))
	if err != nil {
		slog.Warn("advisor unavailable, using fallback recommendations", slog.Any("error", err))
		return nil
	}
	recs, err := parseRankedRecommendations(resp)
	if err != nil {
		slog.Warn("advisor recommendations discarded", slog.Any("error", err))
		return nil
	}
	return recs
}
