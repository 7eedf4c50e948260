// Package lexicon holds the static reference data used for lexical signal
// extraction: recognized technical skills, soft skills, and action verbs.
//
// The data is embedded at build time and parsed exactly once. Declaration
// order in lexicon.yaml is preserved; the matcher relies on it as a stable,
// reproducible tie-break, so no map iteration is exposed for ordering.
package lexicon

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var rawLexicon []byte

// Term is one reference entry. Term is the pre-folded matching form; Display
// encodes the casing rules (acronyms upper-cased, multi-word terms
// title-cased, named exceptions like "Node.js").
type Term struct {
	Term    string `yaml:"term"`
	Display string `yaml:"display"`
}

// Lexicon is the full immutable reference set, loaded once at process start.
type Lexicon struct {
	Technical  []Term
	Soft       []Term
	ActionVerb []string

	display map[string]string
}

type lexiconDoc struct {
	Technical   []Term   `yaml:"technical"`
	Soft        []Term   `yaml:"soft"`
	ActionVerbs []string `yaml:"action_verbs"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the process-wide lexicon parsed from the embedded data.
// The embedded document is validated at first use; a malformed document is a
// build defect, so Default panics rather than returning an error.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex, defaultErr = parse(rawLexicon)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("lexicon: embedded data invalid: %v", defaultErr))
	}
	return defaultLex
}

func parse(raw []byte) (*Lexicon, error) {
	var doc lexiconDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("op=lexicon.parse: %w", err)
	}
	if len(doc.Technical) == 0 || len(doc.ActionVerbs) == 0 {
		return nil, fmt.Errorf("op=lexicon.parse: document missing required sections")
	}
	lex := &Lexicon{
		Technical:  doc.Technical,
		Soft:       doc.Soft,
		ActionVerb: doc.ActionVerbs,
		display:    make(map[string]string, len(doc.Technical)+len(doc.Soft)),
	}
	for _, t := range append(append([]Term{}, doc.Technical...), doc.Soft...) {
		if t.Term != strings.ToLower(t.Term) {
			return nil, fmt.Errorf("op=lexicon.parse: term %q is not pre-folded", t.Term)
		}
		lex.display[t.Term] = t.Display
	}
	return lex, nil
}

// Display returns the canonical display form for a folded term, or the term
// itself when no display form is declared.
func (l *Lexicon) Display(term string) string {
	if d, ok := l.display[strings.ToLower(term)]; ok {
		return d
	}
	return term
}
