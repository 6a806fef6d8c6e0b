package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sj4nes/uiua/ast"
)

func parseItems(t *testing.T, input string) []ast.Item {
	t.Helper()
	items, err := Parse(input)
	require.Nil(t, err)
	return items
}

func TestWordsItem(t *testing.T) {
	items := parseItems(t, "1 2 x")
	require.Len(t, items, 1)

	words, ok := items[0].(*ast.Words)
	require.True(t, ok)
	require.Len(t, words.List, 3)

	num, ok := words.List[0].(*ast.Number)
	require.True(t, ok)
	require.Equal(t, 1.0, num.Value)

	ident, ok := words.List[2].(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "x", ident.Name)
}

func TestBinding(t *testing.T) {
	items := parseItems(t, "x = 1 2")
	require.Len(t, items, 1)

	binding, ok := items[0].(*ast.Binding)
	require.True(t, ok)
	require.Equal(t, "x", binding.Name.Name)
	require.Len(t, binding.Words, 2)
}

func TestEmptyBinding(t *testing.T) {
	items := parseItems(t, "x =")
	require.Len(t, items, 1)
	binding, ok := items[0].(*ast.Binding)
	require.True(t, ok)
	require.Empty(t, binding.Words)
}

func TestComment(t *testing.T) {
	items := parseItems(t, "# hello world")
	require.Len(t, items, 1)
	comment, ok := items[0].(*ast.Comment)
	require.True(t, ok)
	require.Equal(t, "hello world", comment.Text)
}

func TestTrailingCommentBecomesOwnItem(t *testing.T) {
	items := parseItems(t, "1 2 # trailing")
	require.Len(t, items, 2)
	_, ok := items[0].(*ast.Words)
	require.True(t, ok)
	comment, ok := items[1].(*ast.Comment)
	require.True(t, ok)
	require.Equal(t, "trailing", comment.Text)
}

func TestBlankLinesCollapse(t *testing.T) {
	items := parseItems(t, "1\n\n\n\n2")
	require.Len(t, items, 3)
	_, ok := items[1].(*ast.Newlines)
	require.True(t, ok)
}

func TestStrand(t *testing.T) {
	items := parseItems(t, "1_2_3 x")
	words := items[0].(*ast.Words)
	require.Len(t, words.List, 2)

	strand, ok := words.List[0].(*ast.Strand)
	require.True(t, ok)
	require.Len(t, strand.Words, 3)
}

func TestArray(t *testing.T) {
	items := parseItems(t, "[1 2 3]")
	words := items[0].(*ast.Words)
	array, ok := words.List[0].(*ast.Array)
	require.True(t, ok)
	require.Len(t, array.Words, 3)
}

func TestFunc(t *testing.T) {
	items := parseItems(t, "(1 2)")
	words := items[0].(*ast.Words)
	fn, ok := words.List[0].(*ast.Func)
	require.True(t, ok)
	require.Len(t, fn.Body, 2)
}

func TestFuncArray(t *testing.T) {
	items := parseItems(t, "(1|2 3|4)")
	words := items[0].(*ast.Words)
	fa, ok := words.List[0].(*ast.FuncArray)
	require.True(t, ok)
	require.Len(t, fa.Funcs, 3)
	require.Len(t, fa.Funcs[1].Body, 2)
}

func TestModifierGlyph(t *testing.T) {
	items := parseItems(t, "/+ [1 2]")
	words := items[0].(*ast.Words)
	require.Len(t, words.List, 2)

	mod, ok := words.List[0].(*ast.Modified)
	require.True(t, ok)
	prim, ok := mod.Modifier.(*ast.Primitive)
	require.True(t, ok)
	require.Equal(t, "reduce", prim.Prim.Name())
	_, ok = mod.Operand.(*ast.Primitive)
	require.True(t, ok)
}

func TestModifierByName(t *testing.T) {
	items := parseItems(t, "reduce add [1 2]")
	words := items[0].(*ast.Words)
	mod, ok := words.List[0].(*ast.Modified)
	require.True(t, ok)
	ident, ok := mod.Modifier.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "reduce", ident.Name)
}

func TestBareModifierAtLineEnd(t *testing.T) {
	// A modifier with nothing to modify is kept as a plain word.
	items := parseItems(t, "1 /")
	words := items[0].(*ast.Words)
	require.Len(t, words.List, 2)
	_, ok := words.List[1].(*ast.Primitive)
	require.True(t, ok)
}

func TestSelector(t *testing.T) {
	items := parseItems(t, "x .ab")
	words := items[0].(*ast.Words)
	sel, ok := words.List[1].(*ast.Selector)
	require.True(t, ok)
	require.Equal(t, ".ab", sel.Text)
}

func TestPositions(t *testing.T) {
	items := parseItems(t, "x = 1\nfoo")
	binding := items[0].(*ast.Binding)
	require.Equal(t, 1, binding.Pos().LineNumber())
	require.Equal(t, 1, binding.Pos().ColumnNumber())

	words := items[1].(*ast.Words)
	require.Equal(t, 2, words.Pos().LineNumber())
}

func TestUnterminatedArray(t *testing.T) {
	_, err := Parse("[1 2")
	require.NotNil(t, err)
	errs, ok := err.(*Errors)
	require.True(t, ok)
	require.Equal(t, 1, errs.Count())
	require.Contains(t, errs.First().Error(), "expected ']'")
}

func TestOneDiagnosticPerBadLine(t *testing.T) {
	_, err := Parse("] ] ]\n) ) )")
	require.NotNil(t, err)
	errs, ok := err.(*Errors)
	require.True(t, ok)
	require.Equal(t, 2, errs.Count())
}

func TestValidItemsSurviveErrors(t *testing.T) {
	items, err := Parse("1 2\n]\n3 4")
	require.NotNil(t, err)
	require.Len(t, items, 2)
}

func TestErrorHasFilenameAndSpan(t *testing.T) {
	_, err := Parse("]", WithFilename("main.ua"))
	require.NotNil(t, err)
	errs := err.(*Errors)
	first := errs.First()
	require.Equal(t, "main.ua", first.File())
	require.Equal(t, 1, first.StartPosition().LineNumber())
	require.Equal(t, 1, first.StartPosition().ColumnNumber())
	require.Equal(t, "]", first.SourceCode())
}

func TestLexicalErrorsSurface(t *testing.T) {
	_, err := Parse(`"abc`)
	require.NotNil(t, err)
	errs := err.(*Errors)
	require.Contains(t, errs.First().Error(), "unterminated string")
}

func TestCharValidation(t *testing.T) {
	_, err := Parse("'ab'")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "exactly one character")
}
