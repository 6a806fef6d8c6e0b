// Package format renders Uiua syntax trees back into canonical source
// text.
//
// Formatting is a single left-to-right walk. Each top-level item is
// rendered and then registered with the binding oracle, so an unbound
// identifier that spells a primitive name renders as the primitive's
// glyph, while the same spelling after a user binding renders verbatim.
// Spacing between tokens is decided by the guards on State: a separating
// space is inserted only where concatenation would re-tokenize
// differently than intended.
package format

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sj4nes/uiua/ast"
	"github.com/sj4nes/uiua/compiler"
	"github.com/sj4nes/uiua/parser"
	"github.com/sj4nes/uiua/primitives"
)

// Items formats a parsed item sequence. If the oracle raised any
// diagnostics while the items were registered, the rendered text is
// discarded and all diagnostics are returned as one error; callers never
// see partially formatted output. On success the result is trimmed of
// trailing whitespace and ends in exactly one newline.
func Items(items []ast.Item) (string, error) {
	c := compiler.New()
	out := Render(items, c)
	if errs := c.Errors(); len(errs) > 0 {
		var result *multierror.Error
		for _, err := range errs {
			result = multierror.Append(result, err)
		}
		return "", result
	}
	return strings.TrimRight(out, " \t\r\n") + "\n", nil
}

// Render walks the items through the given oracle and returns the raw
// rendered text, one line terminator per item, with no trailing
// normalization. Most callers want Items or Source instead; Render exists
// so the serializer can be driven with a caller-supplied oracle.
func Render(items []ast.Item, oracle Oracle) string {
	state := newState(oracle)
	for _, item := range items {
		formatItem(state, item)
	}
	return state.buf.String()
}

// Source parses and formats Uiua source text. Parse diagnostics are
// returned immediately without attempting to format; otherwise the result
// is that of Items. The path is used only for diagnostics.
func Source(input string, path string) (string, error) {
	items, err := parser.Parse(input, parser.WithFilename(path))
	if err != nil {
		return "", err
	}
	return Items(items)
}

func formatItem(state *State, item ast.Item) {
	switch item := item.(type) {
	case *ast.Words:
		for _, word := range item.List {
			formatWord(state, word)
		}
	case *ast.Binding:
		state.push(item.Name.Name)
		state.push(" = ")
		for _, word := range item.Words {
			formatWord(state, word)
		}
	case *ast.Comment:
		state.push("# ")
		state.push(item.Text)
	case *ast.Newlines:
		// renders to nothing; the line terminator below yields the blank line
	}
	// Register after rendering: the item's own identifiers were resolved
	// against the binding state as it existed before this item.
	state.oracle.Item(item)
	state.push("\n")
}

func formatWord(state *State, word ast.Word) {
	switch word := word.(type) {
	case *ast.Number:
		state.spaceIfAlphanumeric()
		state.push(formatNumber(word.Value))
	case *ast.Char:
		state.spaceIfAlphanumeric()
		state.push(strconv.QuoteRune(word.Value))
	case *ast.String:
		state.spaceIfAlphanumeric()
		state.push(strconv.Quote(word.Value))
	case *ast.Ident:
		if !state.oracle.IsBound(word.Name) {
			if prim, ok := primitives.FromName(word.Name); ok {
				formatPrimitive(state, prim)
				return
			}
		}
		state.spaceIfAlphabetic()
		state.push(word.Name)
	case *ast.Strand:
		for i, member := range word.Words {
			if i > 0 {
				state.push("_")
			}
			formatWord(state, member)
		}
		state.wasStrand = true
	case *ast.Array:
		state.push("[")
		for _, member := range word.Words {
			formatWord(state, member)
		}
		state.push("]")
	case *ast.Func:
		state.push("(")
		for _, member := range word.Body {
			formatWord(state, member)
		}
		state.push(")")
	case *ast.FuncArray:
		state.push("(")
		for i, f := range word.Funcs {
			if i > 0 {
				state.push("|")
			}
			for _, member := range f.Body {
				formatWord(state, member)
			}
		}
		state.push(")")
	case *ast.Selector:
		state.spaceIfAlphabetic()
		state.push(word.Text)
	case *ast.Primitive:
		formatPrimitive(state, word.Prim)
	case *ast.Modified:
		formatWord(state, word.Modifier)
		formatWord(state, word.Operand)
	}
}

func formatPrimitive(state *State, prim primitives.Primitive) {
	text := prim.CanonicalForm()
	if prim.StartsAlphabetic() {
		state.spaceIfAlphanumeric()
	}
	state.push(text)
}

// formatNumber renders the canonical text for a numeric value: the
// shortest decimal that round-trips, with the high minus sign.
func formatNumber(value float64) string {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	return strings.Replace(text, "-", "¯", 1)
}
