package fragment

import (
	"strings"

	"github.com/nolman/fragment/tokenizer"
)

// Character classes of the surface syntax. Everything outside nonIdent is
// a legal identifier character; the oracle has the final word.
const (
	operatorChars   = `\<>+-*/:=|&~^%!`
	starterPunct    = ",([{;"
	nonStarterPunct = ")]}\"'.$"
	spaceChars      = "\t "
	trailingIdent   = "?!"
)

var nonIdentTable [128]bool

func init() {
	for _, class := range []string{operatorChars, starterPunct, nonStarterPunct, spaceChars, trailingIdent} {
		for _, r := range class {
			nonIdentTable[r] = true
		}
	}
}

func isNonIdent(r rune) bool      { return r < 128 && nonIdentTable[r] }
func isOperatorChar(r rune) bool  { return r < 128 && strings.ContainsRune(operatorChars, r) }
func isStarterPunct(r rune) bool  { return r < 128 && strings.ContainsRune(starterPunct, r) }
func isSpace(r rune) bool         { return r == ' ' || r == '\t' }
func isTrailingIdent(r rune) bool { return r == '?' || r == '!' }

// textualOperators look like identifiers but behave as operators. They
// demote from local_or_var only in positions that already committed to
// "something follows", tracked by the callOp flag.
var textualOperators = map[string]struct{}{
	"when": {}, "not": {}, "and": {}, "or": {}, "in": {},
}

// surroundKeywords are block keywords never reported as a local or var by
// SurroundContext.
var surroundKeywords = map[string]struct{}{
	"do": {}, "end": {}, "after": {}, "else": {}, "catch": {}, "rescue": {},
}

func isTextualOperator(s string) bool {
	_, ok := textualOperators[s]
	return ok
}

// Option reserves room for future knobs on both entry points. None are
// currently defined.
type Option func(*scanner)

// scanner walks a reversed rune sequence leftward from the cursor. It is
// stateless apart from the oracle; every call threads the remaining input
// and the count of consumed runes explicitly.
type scanner struct {
	oracle Oracle
}

func newScanner(opts []Option) *scanner {
	s := &scanner{oracle: defaultOracle{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// CursorContext classifies what is being typed at the end of fragment.
// Only the last line is considered.
func CursorContext(frag string, opts ...Option) Context {
	s := newScanner(opts)
	ctx, _ := s.context(reversed([]rune(lastLine(frag))))
	return ctx
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(s, "\r")
}

func reversed(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}

// at reports whether rev has r at index i. Out-of-range indexes simply
// report false, which keeps the dispatch guards compact.
func at(rev []rune, i int, r rune) bool {
	return i < len(rev) && rev[i] == r
}

func stripSpaces(rev []rune, count int) ([]rune, int) {
	i := 0
	for i < len(rev) && isSpace(rev[i]) {
		i++
	}
	return rev[i:], count + i
}

// context is the dispatch point of the reverse scan. rev holds the line in
// reverse, rev[0] being the character just before the cursor. The second
// return value is the number of runes the recognized token occupies,
// counted from the cursor leftward; SurroundContext turns it into a span.
func (s *scanner) context(rev []rune) (Context, int) {
	stripped, count := stripSpaces(rev, 0)
	switch {
	case len(stripped) == 0:
		return expr(), 0

	// => and -> exist only as complete tokens; nothing extends them.
	case at(stripped, 0, '>') && at(stripped, 1, '=') && !at(stripped, 2, ':'):
		return expr(), 0
	case at(stripped, 0, '>') && at(stripped, 1, '-') && !at(stripped, 2, ':'):
		return expr(), 0

	// << opens a binary literal
	case at(stripped, 0, '<') && at(stripped, 1, '<') && !at(stripped, 2, '<'):
		return expr(), 0

	// A colon right at the cursor starts an atom. With spaces in between
	// it instead terminates whatever came before it.
	case at(stripped, 0, ':') && !at(stripped, 1, ':'):
		if count == 0 {
			return atomOf(""), 1
		}
		return expr(), 0

	// A dot with nothing before it is ambiguous. A dot preceded by . or :
	// belongs to the punctuation-only tokens the identifier recognizer
	// resolves below.
	case at(stripped, 0, '.') && len(stripped) == 1:
		return none(), 0
	case at(stripped, 0, '.') && !at(stripped, 1, '.') && !at(stripped, 1, ':'):
		return s.dot(stripped[1:], count+1, "")

	case at(stripped, 0, '('):
		rest, count := stripSpaces(stripped[1:], count+1)
		if len(rest) == 0 {
			return expr(), 0
		}
		return s.call(rest, count)

	case at(stripped, 0, '/'):
		rest, count := stripSpaces(stripped[1:], count+1)
		return s.arity(rest, count)

	case isStarterPunct(stripped[0]):
		return expr(), 0

	// Space-separated call: in `foo bar` the token before bar is a call.
	case count > 0:
		return s.call(stripped, count)

	default:
		return s.identifier(stripped, count, false)
	}
}

func (s *scanner) call(rev []rune, count int) (Context, int) {
	ctx, count := s.identifier(rev, count, true)
	switch ctx.Kind {
	case LocalOrVarContext:
		return Context{Kind: LocalCallContext, Text: ctx.Text}, count
	case DotContext:
		return Context{Kind: DotCallContext, Text: ctx.Text, Inside: ctx.Inside}, count
	case OperatorContext:
		return Context{Kind: OperatorCallContext, Text: ctx.Text}, count
	default:
		return none(), 0
	}
}

func (s *scanner) arity(rev []rune, count int) (Context, int) {
	ctx, count := s.identifier(rev, count, true)
	switch ctx.Kind {
	case LocalOrVarContext:
		return Context{Kind: LocalArityContext, Text: ctx.Text}, count
	case DotContext:
		return Context{Kind: DotArityContext, Text: ctx.Text, Inside: ctx.Inside}, count
	case OperatorContext:
		return Context{Kind: OperatorArityContext, Text: ctx.Text}, count
	default:
		return none(), 0
	}
}

// identifier recognizes the token ending at the cursor. callOp marks
// positions that already committed to something following the token (a
// call, an arity, the right-hand side of a dot), where textual operator
// words stop being plain locals.
func (s *scanner) identifier(rev []rune, count int, callOp bool) (Context, int) {
	// Punctuation-only tokens the character classes cannot see. rev is
	// reversed, so rev[0] is the last character typed.
	switch {
	case at(rev, 0, '.') && at(rev, 1, '.') && at(rev, 2, ':'):
		return atomOf(".."), count + 3
	case at(rev, 0, '.') && at(rev, 1, '.') && at(rev, 2, '.'):
		return localOf("..."), count + 3
	case at(rev, 0, '.') && at(rev, 1, ':'):
		return atomOf("."), count + 2
	case at(rev, 0, '.') && at(rev, 1, '.'):
		return operOf(".."), count + 2
	}

	rest := rev
	n := count
	var marker rune
	if len(rest) > 0 && isTrailingIdent(rest[0]) {
		marker = rest[0]
		rest = rest[1:]
		n++
	}

	i := 0
	for i < len(rest) && !isNonIdent(rest[i]) {
		i++
	}
	acc := reversed(rest[:i])
	if marker != 0 {
		acc = append(acc, marker)
	}
	rest = rest[i:]
	n += i

	if i == 0 {
		// no identifier characters; an operator may still end here. The
		// trailing marker, if any, is an operator character candidate
		// itself, so hand back the untouched input.
		return s.operator(rev, count, callOp)
	}

	if acc[0] == '@' {
		name := acc[1:]
		if len(name) == 0 {
			return attrOf(""), n
		}
		kind, flags := s.oracle.TokenizeIdentifier(name)
		if kind != tokenizer.IdentifierKind || flags.HasAt {
			return none(), 0
		}
		return attrOf(string(name)), n
	}

	// :acc is an unquoted atom as long as acc tokenizes at all
	if at(rest, 0, ':') && !at(rest, 1, ':') {
		kind, _ := s.oracle.TokenizeIdentifier(acc)
		if kind == tokenizer.OtherKind {
			return none(), 0
		}
		return atomOf(string(acc)), n + 1
	}

	// an interior ? never forms an identifier
	if at(rest, 0, '?') {
		return none(), 0
	}

	kind, flags := s.oracle.TokenizeIdentifier(acc)
	switch {
	case kind == tokenizer.AtomKind:
		// would-be atom body with no colon in sight
		return none(), 0
	case flags.HasAt:
		return none(), 0
	case kind == tokenizer.AliasKind:
		if !flags.ASCIIOnly {
			return none(), 0
		}
		rest, stripN := stripSpaces(rest, n)
		if at(rest, 0, '.') && !at(rest, 1, '.') {
			return s.nestedAlias(rest[1:], stripN+1, string(acc))
		}
		return aliasOf(string(acc)), n
	case kind == tokenizer.IdentifierKind && callOp && isTextualOperator(string(acc)):
		return operOf(string(acc)), n
	case kind == tokenizer.IdentifierKind:
		rest, stripN := stripSpaces(rest, n)
		if at(rest, 0, '.') && !at(rest, 1, '.') {
			return s.dot(rest[1:], stripN+1, string(acc))
		}
		return localOf(string(acc)), n
	default:
		return none(), 0
	}
}

// dot classifies the left-hand side of a dot chain and wraps it around
// acc, the right-hand text recognized so far. rev starts just left of the
// separating dot.
func (s *scanner) dot(rev []rune, count int, acc string) (Context, int) {
	rest, count := stripSpaces(rev, count)
	ctx, count := s.identifier(rest, count, true)
	switch ctx.Kind {
	case LocalOrVarContext:
		return dotOf(Context{Kind: VarContext, Text: ctx.Text}, acc), count
	case UnquotedAtomContext, AliasContext, DotContext, ModuleAttributeContext:
		return dotOf(ctx, acc), count
	default:
		return none(), 0
	}
}

// nestedAlias extends an alias leftward across a dot: in A.B the left
// side must itself be an alias, and the segments join with a dot.
func (s *scanner) nestedAlias(rev []rune, count int, acc string) (Context, int) {
	rest, count := stripSpaces(rev, count)
	ctx, count := s.identifier(rest, count, true)
	if ctx.Kind != AliasContext {
		return none(), 0
	}
	return aliasOf(ctx.Text + "." + acc), count
}

// operator recognizes a run of operator characters ending at the cursor.
func (s *scanner) operator(rev []rune, count int, callOp bool) (Context, int) {
	i := 0
	for i < len(rev) && isOperatorChar(rev[i]) {
		i++
	}
	if i == 0 {
		return none(), 0
	}
	acc := string(reversed(rev[:i]))
	rest := rev[i:]
	count += i

	// ^^, ~~ and ~ are prefixes of longer operators; on their own they
	// only make sense as the partially typed right-hand side of a dot
	// chain, and never inside an already qualified position.
	if acc == "^^" || acc == "~~" || acc == "~" {
		if r2, c2 := stripSpaces(rest, count); at(r2, 0, '.') && !at(r2, 1, '.') {
			if callOp {
				return none(), 0
			}
			return s.dot(r2[1:], c2+1, acc)
		}
	}

	form, name := s.oracle.TokenizeOperator(acc)
	switch form {
	case tokenizer.OpFormAtom:
		return atomOf(name), count
	case tokenizer.OpFormOperator:
		if s.oracle.ClassifyOperator(acc) == tokenizer.OpNone {
			return none(), 0
		}
	default:
		return none(), 0
	}

	if r2, c2 := stripSpaces(rest, count); at(r2, 0, '.') && !at(r2, 1, '.') {
		return s.dot(r2[1:], c2+1, acc)
	}
	return operOf(acc), count
}
