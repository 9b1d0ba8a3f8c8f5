// Package fragment classifies the syntactic construct around a cursor in a
// partially written code fragment. It powers completion ranking, hover and
// go-to-definition in editors and shells: CursorContext reports what is
// being typed at the end of a fragment, SurroundContext reports the
// complete token under a line/column position together with its span.
//
// Only the line holding the cursor is ever analyzed. The scanner works
// right to left from the cursor and validates identifier candidates
// through a tokenizer oracle; it never accepts a token on character
// classes alone.
package fragment

import "fmt"

// ContextKind enumerates the classifications a scan can produce.
type ContextKind int

const (
	// NoneContext means the characters around the cursor do not form any
	// construct worth completing.
	NoneContext ContextKind = iota + 1
	// ExprContext means the cursor sits where a fresh expression may start.
	ExprContext

	AliasContext
	LocalOrVarContext
	LocalArityContext
	LocalCallContext
	ModuleAttributeContext
	UnquotedAtomContext
	OperatorContext
	OperatorArityContext
	OperatorCallContext
	DotContext
	DotArityContext
	DotCallContext

	// VarContext only appears on the left-hand side of a dot chain; a
	// local that is dotted into is necessarily a variable.
	VarContext
)

func (k ContextKind) String() string {
	return kindToDescription[k]
}

func (k ContextKind) GoString() string {
	return kindToDescription[k]
}

// MarshalText makes kinds render as their names in json output.
func (k ContextKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func init() {
	// make sure we panic if a description isn't declared
	for k := ContextKind(1); k <= VarContext; k++ {
		if kindToDescription[k] == "" {
			panic("you have not updated kindToDescription")
		}
	}
}

var kindToDescription = map[ContextKind]string{
	NoneContext: "NoneContext",
	ExprContext: "ExprContext",

	AliasContext:           "AliasContext",
	LocalOrVarContext:      "LocalOrVarContext",
	LocalArityContext:      "LocalArityContext",
	LocalCallContext:       "LocalCallContext",
	ModuleAttributeContext: "ModuleAttributeContext",
	UnquotedAtomContext:    "UnquotedAtomContext",
	OperatorContext:        "OperatorContext",
	OperatorArityContext:   "OperatorArityContext",
	OperatorCallContext:    "OperatorCallContext",
	DotContext:             "DotContext",
	DotArityContext:        "DotArityContext",
	DotCallContext:         "DotCallContext",

	VarContext: "VarContext",
}

// Context is a tagged classification. Text holds the token characters in
// input order. Inside is set for the dot family only and describes the
// left-hand side of the chain; it nests for chains like A.b.c.
type Context struct {
	Kind   ContextKind `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Inside *Context    `json:"inside,omitempty"`
}

func (c Context) String() string {
	switch c.Kind {
	case NoneContext, ExprContext:
		return c.Kind.String()
	case DotContext, DotArityContext, DotCallContext:
		return fmt.Sprintf("%s(%s, %q)", c.Kind, c.Inside, c.Text)
	default:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Text)
	}
}

// Position is a 1-based line/column pair. Columns count extended grapheme
// clusters, not bytes.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Surround is the result of SurroundContext: the classified token plus its
// exact span on the line. End.Column points one past the last cluster, so
// End.Column-Begin.Column is the grapheme length of the token.
type Surround struct {
	Context Context  `json:"context"`
	Begin   Position `json:"begin"`
	End     Position `json:"end"`
}

func (s Surround) String() string {
	return fmt.Sprintf("%s @ %d:%d..%d:%d", s.Context, s.Begin.Line, s.Begin.Column, s.End.Line, s.End.Column)
}

func none() Context             { return Context{Kind: NoneContext} }
func expr() Context             { return Context{Kind: ExprContext} }
func aliasOf(t string) Context  { return Context{Kind: AliasContext, Text: t} }
func localOf(t string) Context  { return Context{Kind: LocalOrVarContext, Text: t} }
func atomOf(t string) Context   { return Context{Kind: UnquotedAtomContext, Text: t} }
func attrOf(t string) Context   { return Context{Kind: ModuleAttributeContext, Text: t} }
func operOf(t string) Context   { return Context{Kind: OperatorContext, Text: t} }
func dotOf(inside Context, t string) Context {
	return Context{Kind: DotContext, Text: t, Inside: &inside}
}
