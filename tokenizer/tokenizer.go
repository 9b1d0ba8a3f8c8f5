// Package tokenizer validates candidate tokens for the fragment scanner.
// The scanner accumulates runs by character class first, because classes
// are cheap, and consults this package once per candidate to confirm the
// kind. Identifier classes follow UAX #31 via the xid tables.
package tokenizer

import (
	"unicode"

	"github.com/smasher164/xid"
)

// Kind classifies a complete character run.
type Kind int

const (
	// OtherKind covers empty, leftover and invalid runs.
	OtherKind Kind = iota + 1
	IdentifierKind
	AliasKind
	// AtomKind marks runs that are valid inside an unquoted atom but not
	// as a bare identifier or alias, such as runs with an interior @.
	AtomKind
)

func (k Kind) String() string {
	return kindToDescription[k]
}

func init() {
	for k := Kind(1); k <= AtomKind; k++ {
		if kindToDescription[k] == "" {
			panic("you have not updated kindToDescription")
		}
	}
}

var kindToDescription = map[Kind]string{
	OtherKind:      "OtherKind",
	IdentifierKind: "IdentifierKind",
	AliasKind:      "AliasKind",
	AtomKind:       "AtomKind",
}

// Flags carries extra facts about a tokenized run.
type Flags struct {
	// ASCIIOnly matters for aliases, which reject non-ASCII segments.
	ASCIIOnly bool
	// HasAt reports a '@' anywhere in the run.
	HasAt bool
}

// Tokenize classifies a complete character run. A single trailing ? or !
// is allowed on identifiers and atoms; anywhere else it invalidates the
// run. A '@' after the first character demotes the run to AtomKind, since
// atoms accept it and identifiers do not.
func Tokenize(rs []rune) (Kind, Flags) {
	flags := Flags{ASCIIOnly: true}
	for _, r := range rs {
		if r >= 0x80 {
			flags.ASCIIOnly = false
		}
		if r == '@' {
			flags.HasAt = true
		}
	}
	if len(rs) == 0 {
		return OtherKind, flags
	}

	body := rs
	marker := false
	if last := rs[len(rs)-1]; last == '?' || last == '!' {
		marker = true
		body = rs[:len(rs)-1]
		if len(body) == 0 {
			return OtherKind, flags
		}
	}

	var kind Kind
	switch first := body[0]; {
	case unicode.IsUpper(first):
		kind = AliasKind
	case first == '_' || xid.Start(first):
		kind = IdentifierKind
	default:
		return OtherKind, flags
	}

	for _, r := range body[1:] {
		if r == '@' {
			continue
		}
		if r == '_' || xid.Continue(r) {
			continue
		}
		return OtherKind, flags
	}

	if flags.HasAt {
		kind = AtomKind
	}
	if marker && kind == AliasKind {
		// Foo! cannot be an alias; it is only reachable as an atom body
		kind = AtomKind
	}
	return kind, flags
}
