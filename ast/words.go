package ast

import (
	"bytes"

	"github.com/sj4nes/uiua/internal/token"
	"github.com/sj4nes/uiua/primitives"
)

// Number is a word node that holds a numeric literal.
type Number struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text (e.g., "4.2", "¯1")
	Value    float64        // the parsed value
}

func (x *Number) wordNode() {}

func (x *Number) Pos() token.Position { return x.ValuePos }
func (x *Number) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Number) String() string { return x.Literal }

// Char is a word node that holds a character literal.
type Char struct {
	ValuePos token.Position // position of the opening quote
	Literal  string         // the raw literal including quotes
	Value    rune           // the character value
}

func (x *Char) wordNode() {}

func (x *Char) Pos() token.Position { return x.ValuePos }
func (x *Char) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *Char) String() string { return x.Literal }

// String is a word node that holds a string literal.
type String struct {
	ValuePos token.Position // position of the opening quote
	Literal  string         // the raw literal including quotes
	Value    string         // the unquoted string value
}

func (x *String) wordNode() {}

func (x *String) Pos() token.Position { return x.ValuePos }
func (x *String) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }

func (x *String) String() string { return x.Literal }

// Ident is a word node that refers to a name. Whether the name denotes a
// user binding or a primitive is resolved later, against the binding state
// at the point of use.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) wordNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

func (x *Ident) String() string { return x.Name }

// Strand is a word node holding values joined implicitly into one array.
// Canonical text joins the members with "_".
type Strand struct {
	Words []Word // the members, at least two
}

func (x *Strand) wordNode() {}

func (x *Strand) Pos() token.Position { return x.Words[0].Pos() }
func (x *Strand) End() token.Position { return x.Words[len(x.Words)-1].End() }

func (x *Strand) String() string {
	var out bytes.Buffer
	for i, w := range x.Words {
		if i > 0 {
			out.WriteString("_")
		}
		out.WriteString(w.String())
	}
	return out.String()
}

// Array is a word node holding a bracketed array literal.
type Array struct {
	Lbracket token.Position // position of "["
	Words    []Word         // the elements
	Rbracket token.Position // position of "]"
}

func (x *Array) wordNode() {}

func (x *Array) Pos() token.Position { return x.Lbracket }
func (x *Array) End() token.Position { return x.Rbracket.Advance(1) }

func (x *Array) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	for _, w := range x.Words {
		out.WriteString(w.String())
	}
	out.WriteString("]")
	return out.String()
}

// Func is a word node holding a parenthesized function literal.
type Func struct {
	Lparen token.Position // position of "(" (or "|" within an alternation)
	Body   []Word         // the function body
	Rparen token.Position // position of ")"
}

func (x *Func) wordNode() {}

func (x *Func) Pos() token.Position { return x.Lparen }
func (x *Func) End() token.Position { return x.Rparen.Advance(1) }

func (x *Func) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	for _, w := range x.Body {
		out.WriteString(w.String())
	}
	out.WriteString(")")
	return out.String()
}

// FuncArray is a word node holding a function alternation: two or more
// function bodies in one set of parentheses, divided by "|".
type FuncArray struct {
	Lparen token.Position // position of "("
	Funcs  []*Func        // the alternate bodies, at least two
	Rparen token.Position // position of ")"
}

func (x *FuncArray) wordNode() {}

func (x *FuncArray) Pos() token.Position { return x.Lparen }
func (x *FuncArray) End() token.Position { return x.Rparen.Advance(1) }

func (x *FuncArray) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	for i, f := range x.Funcs {
		if i > 0 {
			out.WriteString("|")
		}
		for _, w := range f.Body {
			out.WriteString(w.String())
		}
	}
	out.WriteString(")")
	return out.String()
}

// Selector is a word node holding a selector expression. The text is
// self-describing and renders verbatim.
type Selector struct {
	TextPos token.Position // position of "."
	Text    string         // the selector text, including the leading "."
}

func (x *Selector) wordNode() {}

func (x *Selector) Pos() token.Position { return x.TextPos }
func (x *Selector) End() token.Position { return x.TextPos.Advance(len(x.Text)) }

func (x *Selector) String() string { return x.Text }

// Primitive is a word node referring to a resolved built-in operator.
type Primitive struct {
	PrimPos token.Position // position of the glyph or name
	Prim    primitives.Primitive
}

func (x *Primitive) wordNode() {}

func (x *Primitive) Pos() token.Position { return x.PrimPos }
func (x *Primitive) End() token.Position { return x.PrimPos.Advance(len(x.Prim.CanonicalForm())) }

func (x *Primitive) String() string { return x.Prim.CanonicalForm() }

// Modified is a word node applying a modifier word to an operand word.
type Modified struct {
	Modifier Word // the modifier, a Primitive or an Ident naming one
	Operand  Word // the word being modified
}

func (x *Modified) wordNode() {}

func (x *Modified) Pos() token.Position { return x.Modifier.Pos() }
func (x *Modified) End() token.Position { return x.Operand.End() }

func (x *Modified) String() string { return x.Modifier.String() + x.Operand.String() }
