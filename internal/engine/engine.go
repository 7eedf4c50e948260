// Package engine implements the deterministic analysis core: signal
// extraction, quality scoring, and job matching. Every operation here is a
// pure function over its arguments plus the immutable lexicon; no network,
// no storage, no shared mutable state.
package engine

import (
	"regexp"
	"strings"

	"github.com/fairyhunter13/resume-analyzer/internal/engine/lexicon"
)

// Engine evaluates resume and job-description text against a lexicon.
// Safe for concurrent use; all state is built in New and read-only after.
type Engine struct {
	lex      *lexicon.Lexicon
	strict   bool
	strictRe map[string]*regexp.Regexp
}

// Option configures an Engine.
type Option func(*Engine)

// WithTokenBoundaries switches matching to token-boundary mode. The default
// is plain substring containment, which deliberately permits false positives
// on substrings ("java" matches inside "javascript"); callers that depend on
// the documented containment semantics must not set this.
func WithTokenBoundaries() Option {
	return func(e *Engine) { e.strict = true }
}

// New constructs an Engine over the given lexicon. Pass lexicon.Default()
// for the embedded reference data.
func New(lex *lexicon.Lexicon, opts ...Option) *Engine {
	e := &Engine{lex: lex}
	for _, o := range opts {
		o(e)
	}
	if e.strict {
		e.strictRe = make(map[string]*regexp.Regexp)
		for _, t := range lex.Technical {
			e.strictRe[t.Term] = boundaryRe(t.Term)
		}
		for _, t := range lex.Soft {
			e.strictRe[t.Term] = boundaryRe(t.Term)
		}
		for _, v := range lex.ActionVerb {
			e.strictRe[v] = boundaryRe(v)
		}
	}
	return e
}

// contains reports whether the pre-folded text contains the pre-folded term,
// honoring the configured matching mode.
func (e *Engine) contains(folded, term string) bool {
	if term == "" {
		return false
	}
	if !e.strict {
		return strings.Contains(folded, term)
	}
	re, ok := e.strictRe[term]
	if !ok {
		re = boundaryRe(term)
	}
	return re.MatchString(folded)
}

func boundaryRe(term string) *regexp.Regexp {
	// [a-z0-9+#] keeps "c++" and "c#" from bleeding into neighbors while
	// still treating punctuation and whitespace as boundaries.
	return regexp.MustCompile(`(^|[^a-z0-9+#])` + regexp.QuoteMeta(term) + `($|[^a-z0-9+#])`)
}
