package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/resume-analyzer/internal/adapter/observability"
	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
	"github.com/fairyhunter13/resume-analyzer/internal/engine"
	"github.com/fairyhunter13/resume-analyzer/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg     config.Config
	Analyze usecase.AnalyzeService
	Match   usecase.MatchService
	Sync    *usecase.SyncService
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, analyze usecase.AnalyzeService, match usecase.MatchService, syncSvc *usecase.SyncService) *Server {
	return &Server{Cfg: cfg, Analyze: analyze, Match: match, Sync: syncSvc}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidInput), nil)
		return false
	}
	if err := getValidator().Struct(dst); err != nil {
		verrs := map[string]string{}
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				verrs[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidInput), verrs)
		return false
	}
	return true
}

// looksLikeText sniffs the payload so binary blobs (a PDF pasted into the
// JSON field, say) are rejected up front instead of being "analyzed".
func looksLikeText(s string) bool {
	if s == "" {
		return true
	}
	m := mimetype.Detect([]byte(s))
	for mt := m; mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}

type signalsDTO struct {
	FoundSkills      []string `json:"found_skills"`
	FoundSoftSkills  []string `json:"found_soft_skills"`
	FoundActionVerbs []string `json:"found_action_verbs"`
	HasMetrics       bool     `json:"has_metrics"`
	ExperienceYears  int      `json:"experience_years"`
	TextLength       int      `json:"text_length"`
}

type scoreDTO struct {
	Value        float64  `json:"value"`
	Scale        string   `json:"scale"`
	RoleFit      float64  `json:"role_fit"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Errors       []string `json:"errors"`
}

func toSignalsDTO(s domain.SignalSet) signalsDTO {
	return signalsDTO{
		FoundSkills:      s.FoundSkills,
		FoundSoftSkills:  s.FoundSoftSkills,
		FoundActionVerbs: s.FoundVerbs,
		HasMetrics:       s.HasMetrics,
		ExperienceYears:  s.ExperienceYears,
		TextLength:       s.TextLength,
	}
}

func toScoreDTO(s domain.Score) scoreDTO {
	return scoreDTO{
		Value:        s.Value,
		Scale:        string(s.Scale),
		RoleFit:      s.RoleFit,
		Strengths:    s.Strengths,
		Improvements: s.Improvements,
		Errors:       s.Errors,
	}
}

// AnalyzeHandler extracts signals from resume text and scores them.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text       string `json:"text" validate:"required"`
			TargetRole string `json:"target_role"`
			Scale      string `json:"scale" validate:"omitempty,oneof=0-10 0-100"`
		}
		if !decodeAndValidate(w, r, s.Cfg.MaxBodyBytes, &req) {
			return
		}
		if !looksLikeText(req.Text) {
			writeError(w, r, fmt.Errorf("%w: text field does not contain text", domain.ErrInvalidInput), nil)
			return
		}

		signals, score, err := s.Analyze.Analyze(r.Context(), req.Text, req.TargetRole)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		observability.AnalysisScoreHistogram.Observe(score.Value)
		if req.Scale == string(domain.ScaleZeroToTen) {
			score = engine.OnScale(score, domain.ScaleZeroToTen)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"signals": toSignalsDTO(signals),
			"score":   toScoreDTO(score),
		})
	}
}

// MatchHandler compares a user's inventory against a job description.
func (s *Server) MatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID         string `json:"user_id" validate:"required"`
			JobDescription string `json:"job_description" validate:"required,max=20000"`
		}
		if !decodeAndValidate(w, r, s.Cfg.MaxBodyBytes, &req) {
			return
		}
		if !looksLikeText(req.JobDescription) {
			writeError(w, r, fmt.Errorf("%w: job_description does not contain text", domain.ErrInvalidInput), nil)
			return
		}

		result, err := s.Match.Match(r.Context(), req.UserID, req.JobDescription)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		observability.MatchScoreHistogram.Observe(float64(result.MatchScorePercent))
		writeJSON(w, http.StatusOK, map[string]any{
			"match_score_percent": result.MatchScorePercent,
			"matched_skills":      result.MatchedSkills,
			"missing_skills":      result.MissingSkills,
			"recommendations":     result.Recommendations,
		})
	}
}

type skillDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
	Goal     string `json:"goal"`
	Status   string `json:"status"`
}

func toSkillDTOs(entries []domain.SkillEntry) []skillDTO {
	out := make([]skillDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, skillDTO{ID: e.ID, Name: e.Name, Progress: e.Progress, Goal: e.Goal, Status: string(e.Status)})
	}
	return out
}

// SyncHandler reconciles discovered skills into the user's inventory.
func (s *Server) SyncHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID string   `json:"user_id" validate:"required"`
			Skills []string `json:"skills" validate:"required"`
		}
		if !decodeAndValidate(w, r, s.Cfg.MaxBodyBytes, &req) {
			return
		}

		created, err := s.Sync.SyncSkills(r.Context(), req.UserID, req.Skills)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		observability.SkillsCreatedTotal.Add(float64(len(created)))
		writeJSON(w, http.StatusOK, map[string]any{
			"created":       toSkillDTOs(created),
			"created_count": len(created),
		})
	}
}

// SkillsHandler lists a user's inventory.
func (s *Server) SkillsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		entries, err := s.Sync.ListSkills(r.Context(), userID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"skills": toSkillDTOs(entries)})
	}
}
