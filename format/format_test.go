package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sj4nes/uiua/ast"
	"github.com/sj4nes/uiua/parser"
)

func formatSource(t *testing.T, input string) string {
	t.Helper()
	out, err := Source(input, "test.ua")
	require.Nil(t, err, "input: %s", input)
	return out
}

func TestCanonicalRendering(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Unbound names that spell primitives render as glyphs
		{"add 1 2", "+1 2\n"},
		{"multiply 3 4", "×3 4\n"},
		{"reduce add [1 2 3]", "/+[1 2 3]\n"},
		{"/+ [1 2 3]", "/+[1 2 3]\n"},
		// Numbers render as the shortest round-tripping decimal
		{"1.50", "1.5\n"},
		{"007", "7\n"},
		{"¯3", "¯3\n"},
		{"¯0.50", "¯0.5\n"},
		// Chars and strings render quoted and escaped
		{`'a' "hi"`, "'a'\"hi\"\n"},
		{`'\n'`, `'\n'` + "\n"},
		// Comments render with a uniform marker
		{"#hi", "# hi\n"},
		{"#  hi", "#  hi\n"},
		// Functions and alternations
		{"(1 2)", "(1 2)\n"},
		{"(1|2 3|4)", "(1|2 3|4)\n"},
		// Unknown names stay as written
		{"foo", "foo\n"},
		// Selectors
		{"x .ab", "x .ab\n"},
		{"1 .ab", "1.ab\n"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, formatSource(t, tt.input), "input: %s", tt.input)
	}
}

func TestSpacingSafety(t *testing.T) {
	// Adjacent tokens whose concatenation would re-tokenize differently
	// must stay separated by a space.
	tests := []struct {
		input    string
		expected string
	}{
		{"1 2", "1 2\n"},
		{"x y", "x y\n"},
		// Identifiers use the looser alphabetic guard: a digit directly
		// before a letter run is already two tokens.
		{"3 x", "3x\n"},
		{"x 3", "x 3\n"},
		// A glyphless primitive after alphanumeric output needs a space
		{"1 dup", "1 dup\n"},
		{"dup dup", "dup dup\n"},
		// Symbolic forms need no guard
		{"1 add 2", "1+2\n"},
	}
	for _, tt := range tests {
		out := formatSource(t, tt.input)
		require.Equal(t, tt.expected, out, "input: %s", tt.input)

		// Re-parsing the output must preserve the token structure.
		reparsed, err := parser.Parse(out)
		require.Nil(t, err, "output: %s", out)
		original, err := parser.Parse(tt.input)
		require.Nil(t, err)
		require.Equal(t, wordCount(original), wordCount(reparsed), "input: %s", tt.input)
	}
}

func wordCount(items []ast.Item) int {
	n := 0
	for _, item := range items {
		if words, ok := item.(*ast.Words); ok {
			n += len(words.List)
		}
	}
	return n
}

func TestStrandRoundTrip(t *testing.T) {
	require.Equal(t, "1_2_3\n", formatSource(t, "1_2_3"))
	// A bare identifier after a strand is separated by one space, not "_"
	require.Equal(t, "1_2_3 x\n", formatSource(t, "1_2_3 x"))
	require.Equal(t, "1_2_3 x\n", formatSource(t, "1_2_3x"))
	// The strand flag guards exactly one following token
	require.Equal(t, "1_2 x y\n", formatSource(t, "1_2 x y"))
	// Group openers need no strand separation
	require.Equal(t, "1_2[3]\n", formatSource(t, "1_2[3]"))
}

func TestPrimitiveVersusBinding(t *testing.T) {
	// Unbound: renders as the primitive
	require.Equal(t, "+1\n", formatSource(t, "add 1"))

	// After a same-named binding, occurrences render as the identifier
	out := formatSource(t, "add = 5\nadd add 3")
	require.Equal(t, "add = 5\nadd add 3\n", out)

	// Mixed: one name bound, another not
	out = formatSource(t, "x = 5\nadd x 1")
	require.Equal(t, "x = 5\n+x 1\n", out)
}

func TestSelfReferentialBinding(t *testing.T) {
	// A binding's own right-hand side is rendered before the binding is
	// registered, so the name still resolves to the primitive there.
	require.Equal(t, "add = +1\n", formatSource(t, "add = add 1"))

	// A name bound earlier stays an identifier inside later definitions.
	out := formatSource(t, "add = 5\nother = add")
	require.Equal(t, "add = 5\nother = add\n", out)
}

func TestTrailingNormalization(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x", "x\n"},
		{"x\n", "x\n"},
		{"x\n\n\n", "x\n"},
		{"x  \t", "x\n"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, formatSource(t, tt.input), "input: %q", tt.input)
	}
}

func TestBlankLinesCollapse(t *testing.T) {
	require.Equal(t, "1\n\n2\n", formatSource(t, "1\n\n\n\n2"))
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"add 1 2",
		"reduce add [1 2 3]",
		"x = 5\nadd x 1",
		"add = add 1",
		"1_2_3 x",
		"# comment\n\nfoo bar\n(1|2)",
		`'a' "str" .ab 4.25 ¯1`,
		"fold add 0 [1 2 3]",
		"x =\ny",
	}
	for _, input := range inputs {
		once := formatSource(t, input)
		twice := formatSource(t, once)
		require.Equal(t, once, twice, "input: %q", input)
	}
}

func TestAllOrNothingParseDiagnostics(t *testing.T) {
	// One valid item followed by one malformed item: no output, exactly
	// the malformed item's error.
	out, err := Source("1 2\n]", "test.ua")
	require.Equal(t, "", out)
	require.NotNil(t, err)

	errs, ok := err.(*parser.Errors)
	require.True(t, ok)
	require.Equal(t, 1, errs.Count())
	require.Contains(t, errs.First().Error(), "unexpected token")
}

func TestAllOrNothingCompileDiagnostics(t *testing.T) {
	out, err := Source("x = 1\nx = 2", "test.ua")
	require.Equal(t, "", out)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), `duplicate binding "x"`)
}

// stubOracle lets the serializer be driven with a fixed binding set.
type stubOracle struct {
	bound      map[string]bool
	registered []ast.Item
}

func (o *stubOracle) Item(item ast.Item) {
	o.registered = append(o.registered, item)
}

func (o *stubOracle) IsBound(name string) bool {
	return o.bound[name]
}

func TestRenderWithStubOracle(t *testing.T) {
	items, err := parser.Parse("add 1")
	require.Nil(t, err)

	// With "add" bound, the identifier renders verbatim.
	oracle := &stubOracle{bound: map[string]bool{"add": true}}
	require.Equal(t, "add 1\n", Render(items, oracle))
	require.Len(t, oracle.registered, 1)

	// With nothing bound, it renders as the primitive.
	require.Equal(t, "+1\n", Render(items, &stubOracle{}))
}

func TestRenderRegistersEveryItem(t *testing.T) {
	items, err := parser.Parse("x = 1\n# note\n\n1 2")
	require.Nil(t, err)

	oracle := &stubOracle{}
	Render(items, oracle)
	require.Equal(t, len(items), len(oracle.registered))
}
