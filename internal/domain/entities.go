// Package domain holds the core entities and ports of the resume analyzer.
package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	// ErrInvalidInput marks input that cannot be analyzed (binary payloads,
	// missing required fields). Always surfaced to the caller.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAdvisorUnavailable marks an unreachable advisor. Recovered locally
	// via the deterministic fallback paths; never surfaced from scoring or
	// matching operations.
	ErrAdvisorUnavailable = errors.New("advisor unavailable")
	// ErrAdvisorMalformed marks an advisor response that failed validation
	// (wrong entry count, missing sections). The response is discarded and
	// the fallback template is used.
	ErrAdvisorMalformed = errors.New("advisor response malformed")
	// ErrNotFound marks a missing inventory entry or user.
	ErrNotFound = errors.New("not found")
	// ErrInternal marks unexpected failures.
	ErrInternal = errors.New("internal error")
)

// SignalSet is the structured extraction of lexical signals from one input
// text. It is derived fresh per analysis call and never persisted.
type SignalSet struct {
	FoundSkills     []string
	FoundSoftSkills []string
	FoundVerbs      []string
	HasMetrics      bool
	ExperienceYears int
	TextLength      int
}

// ScoreScale selects the presentation scale of a Score value.
type ScoreScale string

const (
	// ScaleZeroToHundred is the authoritative internal scale.
	ScaleZeroToHundred ScoreScale = "0-100"
	// ScaleZeroToTen is a derived presentation (value / 10).
	ScaleZeroToTen ScoreScale = "0-10"
)

// Score is a heuristic resume quality assessment.
// Invariants: Value is clamped to [0, 95] on the 0-100 scale (9.5 on 0-10);
// Strengths and Improvements each carry between 3 and 5 entries.
type Score struct {
	Value        float64
	Scale        ScoreScale
	RoleFit      float64 // 0-10 scale; base score minus the role penalty
	Strengths    []string
	Improvements []string
	Errors       []string
}

// SkillStatus enumerates inventory entry progress states.
type SkillStatus string

const (
	SkillStarted    SkillStatus = "started"
	SkillInProgress SkillStatus = "in_progress"
	SkillComplete   SkillStatus = "complete"
)

// SkillEntry is one user-owned skill inventory record. Name equality is
// case-insensitive for deduplication; the stored casing is the first-write
// canonical form.
type SkillEntry struct {
	ID        string
	Name      string
	Progress  int // [0,100]
	Goal      string
	Status    SkillStatus
	CreatedAt time.Time
}

// MatchResult compares a skill inventory against a job description.
type MatchResult struct {
	MatchScorePercent int
	MatchedSkills     []string
	MissingSkills     []string // <=10, ranked by first occurrence in job text
	Recommendations   []string
}

// SkillStore (port) is the per-user inventory collection. Implementations
// are not expected to make read-then-insert atomic; callers serialize.
type SkillStore interface {
	ListByUser(ctx context.Context, userID string) ([]SkillEntry, error)
	Insert(ctx context.Context, userID string, e SkillEntry) error
}

// Advisor (port) is the optional external text-generation collaborator.
// Responses are untrusted free text; absence or failure must never prevent
// a result from being produced.
type Advisor interface {
	Advise(ctx context.Context, prompt string) (string, error)
	Available() bool
}
