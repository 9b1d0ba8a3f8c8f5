package fragment

import (
	"strings"

	"github.com/rivo/uniseg"
)

// SurroundContext classifies the complete token surrounding pos and
// reports its exact begin/end columns. The boolean is false when no
// surrounding token exists. pos may point at any character of the token,
// its first included; a column one past the token, or on whitespace before
// it that does not follow a separating dot, yields false.
func SurroundContext(frag string, pos Position, opts ...Option) (Surround, bool) {
	s := newScanner(opts)
	if pos.Line < 1 || pos.Column < 1 {
		return Surround{}, false
	}
	lines := strings.Split(frag, "\n")
	if pos.Line > len(lines) {
		return Surround{}, false
	}
	line := strings.TrimSuffix(lines[pos.Line-1], "\r")

	pre, post := splitAtColumn(line, pos.Column-1)
	pre, post = adjustPosition(pre, post)

	aliasOnly, taken, rest := takeIdentifier(post)
	if len(taken) == 0 {
		return s.maybeOperator(pre, post, pos.Line)
	}
	rev := combine(taken, pre)
	ctx, offset := s.context(rev)

	if aliasOnly {
		if ctx.Kind == AliasContext {
			return buildSurround(ctx, rev, pos.Line, offset), true
		}
		return Surround{}, false
	}

	lookahead, _ := stripSpaces(rest, 0)
	switch {
	case ctx.Kind == AliasContext:
		return buildSurround(ctx, rev, pos.Line, offset), true
	case ctx.Kind == DotContext && ctx.Text != "":
		return buildSurround(ctx, rev, pos.Line, offset), true
	case ctx.Kind == LocalOrVarContext && at(lookahead, 0, '('):
		return buildSurround(Context{Kind: LocalCallContext, Text: ctx.Text}, rev, pos.Line, offset), true
	case ctx.Kind == LocalOrVarContext && at(lookahead, 0, '/'):
		return buildSurround(Context{Kind: LocalArityContext, Text: ctx.Text}, rev, pos.Line, offset), true
	case ctx.Kind == LocalOrVarContext && isTextualOperator(ctx.Text):
		return buildSurround(operOf(ctx.Text), rev, pos.Line, offset), true
	case ctx.Kind == LocalOrVarContext:
		if _, keyword := surroundKeywords[ctx.Text]; keyword {
			return Surround{}, false
		}
		return buildSurround(ctx, rev, pos.Line, offset), true
	case ctx.Kind == ModuleAttributeContext && ctx.Text == "":
		return buildSurround(operOf("@"), rev, pos.Line, offset), true
	case ctx.Kind == ModuleAttributeContext:
		return buildSurround(ctx, rev, pos.Line, offset), true
	case ctx.Kind == UnquotedAtomContext:
		return buildSurround(ctx, rev, pos.Line, offset), true
	default:
		return Surround{}, false
	}
}

// splitAtColumn splits line at a 0-based column counted in extended
// grapheme clusters and returns the prefix reversed plus the suffix. A
// column past the end simply leaves the suffix empty.
func splitAtColumn(line string, col int) ([]rune, []rune) {
	idx := 0
	state := -1
	rest := line
	for i := 0; i < col && len(rest) > 0; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		idx += len(cluster)
	}
	return reversed([]rune(line[:idx])), []rune(line[idx:])
}

// adjustPosition nudges the cursor so that positions on an atom's colon,
// on a separating dot, or on the spaces after one resolve to the token a
// reader would consider surrounded.
func adjustPosition(pre, post []rune) ([]rune, []rune) {
	// on the colon of :foo the surrounded token is the atom
	if at(post, 0, ':') && !at(post, 1, ':') && !at(pre, 0, ':') {
		return append([]rune{':'}, pre...), post[1:]
	}

	// on a separating dot, the surrounded token is its right-hand side
	if at(post, 0, '.') && !at(post, 1, '.') && !at(post, 1, ':') && !at(pre, 0, '.') {
		pre = append([]rune{'.'}, pre...)
		post = post[1:]
		for len(post) > 0 && isSpace(post[0]) {
			pre = append([]rune{post[0]}, pre...)
			post = post[1:]
		}
		return pre, post
	}

	// between a dot on the left and its right-hand side, step over the
	// spaces so the span starts at the right-hand identifier
	if len(post) > 0 && isSpace(post[0]) {
		if stripped, _ := stripSpaces(pre, 0); at(stripped, 0, '.') && !at(stripped, 1, '.') && !at(stripped, 1, ':') {
			for len(post) > 0 && isSpace(post[0]) {
				pre = append([]rune{post[0]}, pre...)
				post = post[1:]
			}
		}
	}
	return pre, post
}

// takeIdentifier collects the remainder of the token under the cursor
// going forward. It returns the collected runes reversed, ready to sit in
// front of the reversed prefix. When the collection crossed into a dotted
// alias chain, only an alias classification is acceptable downstream.
func takeIdentifier(post []rune) (aliasOnly bool, taken []rune, rest []rune) {
	rest = post
	for len(rest) > 0 {
		if isTrailingIdent(rest[0]) {
			return false, append([]rune{rest[0]}, taken...), rest[1:]
		}
		if isNonIdent(rest[0]) {
			break
		}
		taken = append([]rune{rest[0]}, taken...)
		rest = rest[1:]
	}
	if t, ok := dotThenUpper(rest); ok {
		return takeAlias(t, append([]rune{'.'}, taken...))
	}
	return false, taken, rest
}

func takeAlias(post []rune, taken []rune) (bool, []rune, []rune) {
	rest := post
	for len(rest) > 0 && !isNonIdent(rest[0]) {
		taken = append([]rune{rest[0]}, taken...)
		rest = rest[1:]
	}
	if t, ok := dotThenUpper(rest); ok {
		return takeAlias(t, append([]rune{'.'}, taken...))
	}
	return true, taken, rest
}

// dotThenUpper reports whether rest continues an alias chain: a dot, then
// an ASCII uppercase letter, spaces permitting. On success it returns the
// sequence right after the dot.
func dotThenUpper(rest []rune) ([]rune, bool) {
	stripped, _ := stripSpaces(rest, 0)
	if !at(stripped, 0, '.') {
		return nil, false
	}
	after, _ := stripSpaces(stripped[1:], 0)
	if len(after) > 0 && after[0] >= 'A' && after[0] <= 'Z' {
		return stripped[1:], true
	}
	return nil, false
}

// maybeOperator handles cursors that sit on operator punctuation.
func (s *scanner) maybeOperator(pre, post []rune, line int) (Surround, bool) {
	taken := takeOperator(post)
	if len(taken) == 0 {
		return Surround{}, false
	}
	rev := combine(taken, pre)
	ctx, offset := s.context(rev)
	switch ctx.Kind {
	case OperatorContext, UnquotedAtomContext:
		return buildSurround(ctx, rev, line, offset), true
	default:
		return Surround{}, false
	}
}

// takeOperator collects operator characters forward; dots ride along so
// that ranges and dotted operator tails resolve as one token.
func takeOperator(post []rune) []rune {
	var taken []rune
	for _, r := range post {
		if !isOperatorChar(r) && r != '.' {
			break
		}
		taken = append([]rune{r}, taken...)
	}
	return taken
}

func combine(taken, pre []rune) []rune {
	out := make([]rune, 0, len(taken)+len(pre))
	out = append(out, taken...)
	return append(out, pre...)
}

// buildSurround turns the scanner's consumed-rune offset into 1-based
// grapheme columns. rev is the combined reversed sequence the scanner ran
// on; its first offset runes are the token.
func buildSurround(ctx Context, rev []rune, line, offset int) Surround {
	if offset > len(rev) {
		offset = len(rev)
	}
	token := string(reversed(rev[:offset]))
	prefix := string(reversed(rev[offset:]))
	begin := uniseg.GraphemeClusterCount(prefix) + 1
	return Surround{
		Context: ctx,
		Begin:   Position{Line: line, Column: begin},
		End:     Position{Line: line, Column: begin + uniseg.GraphemeClusterCount(token)},
	}
}
