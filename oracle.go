package fragment

import "github.com/nolman/fragment/tokenizer"

// Oracle is the tokenizer the scanner consults to confirm identifier
// candidates and classify operators. Character-class accumulation happens
// first; the oracle is asked once per candidate. The indirection exists so
// tests can substitute a deterministic stub.
type Oracle interface {
	TokenizeIdentifier(rs []rune) (tokenizer.Kind, tokenizer.Flags)
	ClassifyOperator(op string) tokenizer.OpClass
	TokenizeOperator(op string) (tokenizer.OpForm, string)
}

type defaultOracle struct{}

func (defaultOracle) TokenizeIdentifier(rs []rune) (tokenizer.Kind, tokenizer.Flags) {
	return tokenizer.Tokenize(rs)
}

func (defaultOracle) ClassifyOperator(op string) tokenizer.OpClass {
	return tokenizer.ClassifyOperator(op)
}

func (defaultOracle) TokenizeOperator(op string) (tokenizer.OpForm, string) {
	return tokenizer.TokenizeOperator(op)
}
