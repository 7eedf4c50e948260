package lexicon_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/resume-analyzer/internal/engine/lexicon"
)

func TestDefault_LoadsEmbeddedData(t *testing.T) {
	lex := lexicon.Default()
	require.NotNil(t, lex)

	assert.NotEmpty(t, lex.Technical)
	assert.NotEmpty(t, lex.Soft)
	assert.NotEmpty(t, lex.ActionVerb)

	// Same pointer on repeated calls.
	assert.Same(t, lex, lexicon.Default())
}

func TestDefault_TermsArePreFolded(t *testing.T) {
	lex := lexicon.Default()
	for _, section := range [][]lexicon.Term{lex.Technical, lex.Soft} {
		for _, term := range section {
			assert.Equal(t, term.Term, strings.ToLower(term.Term), "term %q must be lower case", term.Term)
			assert.NotEmpty(t, term.Display)
		}
	}
}

func TestDefault_DeclarationOrderPreserved(t *testing.T) {
	lex := lexicon.Default()
	// python is declared first; the matcher tie-break depends on that.
	require.NotEmpty(t, lex.Technical)
	assert.Equal(t, "python", lex.Technical[0].Term)

	idx := func(term string) int {
		for i, t := range lex.Technical {
			if t.Term == term {
				return i
			}
		}
		return -1
	}
	java, js := idx("java"), idx("javascript")
	require.GreaterOrEqual(t, java, 0)
	require.GreaterOrEqual(t, js, 0)
	assert.Less(t, java, js)
}

func TestDisplay(t *testing.T) {
	lex := lexicon.Default()

	assert.Equal(t, "Node.js", lex.Display("node.js"))
	assert.Equal(t, "gRPC", lex.Display("grpc"))
	assert.Equal(t, "Problem Solving", lex.Display("problem solving"))
	// Folding is applied on lookup.
	assert.Equal(t, "Python", lex.Display("PYTHON"))
	// Unknown terms pass through unchanged.
	assert.Equal(t, "cobol", lex.Display("cobol"))
}
