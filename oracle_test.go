package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nolman/fragment/tokenizer"
)

// rejectOracle refuses every candidate, proving the scanner never accepts
// an identifier on character classes alone.
type rejectOracle struct{}

func (rejectOracle) TokenizeIdentifier([]rune) (tokenizer.Kind, tokenizer.Flags) {
	return tokenizer.OtherKind, tokenizer.Flags{ASCIIOnly: true}
}

func (rejectOracle) ClassifyOperator(string) tokenizer.OpClass {
	return tokenizer.OpNone
}

func (rejectOracle) TokenizeOperator(string) (tokenizer.OpForm, string) {
	return tokenizer.OpFormOther, ""
}

func TestScannerConsultsOracle(t *testing.T) {
	s := &scanner{oracle: rejectOracle{}}

	for _, input := range []string{"foo", "Foo", ":foo", "+", "Foo.bar"} {
		ctx, _ := s.context(reversed([]rune(input)))
		assert.Equal(t, none(), ctx, "input: %q", input)
	}

	// positions that never need the oracle keep working
	ctx, _ := s.context(nil)
	assert.Equal(t, expr(), ctx)
	ctx, _ = s.context(reversed([]rune("@")))
	assert.Equal(t, attrOf(""), ctx)
}
