package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	test := func(input string, expectedKind Kind, expectedFlags Flags) func(*testing.T) {
		return func(t *testing.T) {
			kind, flags := Tokenize([]rune(input))
			assert.Equal(t, expectedKind, kind, "input: %q", input)
			assert.Equal(t, expectedFlags, flags, "input: %q", input)
		}
	}

	ascii := Flags{ASCIIOnly: true}

	t.Run("", test("foo", IdentifierKind, ascii))
	t.Run("", test("_foo", IdentifierKind, ascii))
	t.Run("", test("foo_bar2", IdentifierKind, ascii))
	t.Run("", test("fooBar", IdentifierKind, ascii))
	t.Run("", test("foo?", IdentifierKind, ascii))
	t.Run("", test("foo!", IdentifierKind, ascii))
	t.Run("", test("öl", IdentifierKind, Flags{}))

	t.Run("", test("Foo", AliasKind, ascii))
	t.Run("", test("FooBar2", AliasKind, ascii))
	t.Run("", test("Óla", AliasKind, Flags{}))

	// atom-only bodies
	t.Run("", test("foo@bar", AtomKind, Flags{ASCIIOnly: true, HasAt: true}))
	t.Run("", test("foo@", AtomKind, Flags{ASCIIOnly: true, HasAt: true}))
	t.Run("", test("Foo!", AtomKind, ascii))

	// invalid runs
	t.Run("", test("", OtherKind, ascii))
	t.Run("", test("?", OtherKind, ascii))
	t.Run("", test("!", OtherKind, ascii))
	t.Run("", test("123", OtherKind, ascii))
	t.Run("", test("1foo", OtherKind, ascii))
	t.Run("", test("fo?o", OtherKind, ascii))
	t.Run("", test("fo-o", OtherKind, ascii))
	t.Run("", test("@foo", OtherKind, Flags{ASCIIOnly: true, HasAt: true}))
}

func TestClassifyOperator(t *testing.T) {
	assert.Equal(t, OpUnary, ClassifyOperator("+"))
	assert.Equal(t, OpUnary, ClassifyOperator("!"))
	assert.Equal(t, OpUnary, ClassifyOperator("not"))
	assert.Equal(t, OpUnary, ClassifyOperator("@"))
	assert.Equal(t, OpBinary, ClassifyOperator("<>"))
	assert.Equal(t, OpBinary, ClassifyOperator("when"))
	assert.Equal(t, OpBinary, ClassifyOperator("::"))
	assert.Equal(t, OpBinary, ClassifyOperator("|>"))
	assert.Equal(t, OpBinary, ClassifyOperator("\\\\"))
	assert.Equal(t, OpNone, ClassifyOperator("=>"))
	assert.Equal(t, OpNone, ClassifyOperator("%%"))
	assert.Equal(t, OpNone, ClassifyOperator(""))
}

func TestTokenizeOperator(t *testing.T) {
	test := func(input string, expectedForm OpForm, expectedName string) func(*testing.T) {
		return func(t *testing.T) {
			form, name := TokenizeOperator(input)
			assert.Equal(t, expectedForm, form, "input: %q", input)
			assert.Equal(t, expectedName, name, "input: %q", input)
		}
	}

	t.Run("", test(":+", OpFormAtom, "+"))
	t.Run("", test(":<>", OpFormAtom, "<>"))
	t.Run("", test(":=", OpFormAtom, "="))
	t.Run("", test("::", OpFormOperator, "::"))
	t.Run("", test("+", OpFormOperator, "+"))
	t.Run("", test("=>", OpFormOperator, "=>"))
	t.Run("", test("->", OpFormOperator, "->"))
	t.Run("", test(":=>", OpFormOther, ""))
	t.Run("", test("%%", OpFormOther, ""))
	t.Run("", test(":", OpFormOther, ""))
}
