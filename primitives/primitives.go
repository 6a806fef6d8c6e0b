// Package primitives defines the fixed registry of built-in Uiua operators.
//
// Each primitive has an ASCII name and, usually, a single-rune glyph. The
// glyph is the canonical display form; primitives without a glyph display
// as their name. The registry is immutable and queried by name or glyph.
package primitives

import "unicode"

// Primitive is one immutable registry entry for a built-in operator.
type Primitive struct {
	name     string
	glyph    rune // 0 when the primitive has no glyph
	modifier bool
}

// Name returns the ASCII spelling of the primitive.
func (p Primitive) Name() string { return p.name }

// Glyph returns the primitive's glyph and whether it has one.
func (p Primitive) Glyph() (rune, bool) {
	return p.glyph, p.glyph != 0
}

// IsModifier reports whether the primitive modifies the word that follows it.
func (p Primitive) IsModifier() bool { return p.modifier }

// CanonicalForm returns the text a formatter always emits for this
// primitive: the glyph if one exists, otherwise the name.
func (p Primitive) CanonicalForm() string {
	if p.glyph != 0 {
		return string(p.glyph)
	}
	return p.name
}

// StartsAlphabetic reports whether the canonical form begins with an
// alphabetic character. Glyphless primitives display as their name, which
// needs a separating space after alphanumeric output.
func (p Primitive) StartsAlphabetic() bool {
	for _, r := range p.CanonicalForm() {
		return unicode.IsLetter(r)
	}
	return false
}

func (p Primitive) String() string { return p.CanonicalForm() }

var registry = []Primitive{
	// Constants
	{name: "pi", glyph: 'π'},
	{name: "tau", glyph: 'τ'},
	{name: "infinity", glyph: '∞'},

	// Monadic pervasive
	{name: "not", glyph: '¬'},
	{name: "neg", glyph: '¯'},
	{name: "abs", glyph: '⌵'},
	{name: "sqrt", glyph: '√'},
	{name: "sign", glyph: '±'},
	{name: "floor", glyph: '⌊'},
	{name: "ceil", glyph: '⌈'},
	{name: "round", glyph: '⁅'},

	// Dyadic pervasive
	{name: "add", glyph: '+'},
	{name: "subtract", glyph: '-'},
	{name: "multiply", glyph: '×'},
	{name: "divide", glyph: '÷'},
	{name: "modulus", glyph: '◿'},
	{name: "power", glyph: 'ⁿ'},
	{name: "log", glyph: 'ₙ'},
	{name: "minimum", glyph: '↧'},
	{name: "maximum", glyph: '↥'},
	{name: "less", glyph: '<'},
	{name: "greater", glyph: '>'},
	{name: "lessequal", glyph: '≤'},
	{name: "greaterequal", glyph: '≥'},
	{name: "notequal", glyph: '≠'},

	// Monadic array
	{name: "len", glyph: '⧻'},
	{name: "shape", glyph: '△'},
	{name: "range", glyph: '⇡'},
	{name: "first", glyph: '⊢'},
	{name: "reverse", glyph: '⇌'},
	{name: "deshape", glyph: '♭'},
	{name: "transpose", glyph: '⍉'},
	{name: "grade", glyph: '⍋'},
	{name: "classify", glyph: '⊛'},
	{name: "deduplicate", glyph: '◴'},

	// Dyadic array
	{name: "match", glyph: '≅'},
	{name: "join", glyph: '⊂'},
	{name: "couple", glyph: '⊟'},
	{name: "pick", glyph: '⊡'},
	{name: "select", glyph: '⊏'},
	{name: "take", glyph: '↙'},
	{name: "drop", glyph: '↘'},
	{name: "rotate", glyph: '↻'},
	{name: "reshape", glyph: '↯'},
	{name: "windows", glyph: '◫'},
	{name: "member", glyph: '∊'},
	{name: "indexof", glyph: '⊗'},

	// Stack
	{name: "flip", glyph: '∶'},
	{name: "over", glyph: ','},
	{name: "pop", glyph: ';'},
	{name: "dup"},

	// Modifiers
	{name: "reduce", glyph: '/', modifier: true},
	{name: "scan", glyph: '\\', modifier: true},
	{name: "each", glyph: '∵', modifier: true},
	{name: "rows", glyph: '≡', modifier: true},
	{name: "table", glyph: '⊞', modifier: true},
	{name: "fold", glyph: '∧', modifier: true},
	{name: "both", glyph: '∩', modifier: true},
	{name: "dip", glyph: '⊙', modifier: true},
	{name: "gap", glyph: '⋅', modifier: true},
	{name: "invert", glyph: '⍘', modifier: true},

	// Misc (no glyph)
	{name: "rand"},
	{name: "trace"},
}

var (
	byName  = map[string]Primitive{}
	byGlyph = map[rune]Primitive{}
)

func init() {
	for _, p := range registry {
		byName[p.name] = p
		if p.glyph != 0 {
			byGlyph[p.glyph] = p
		}
	}
}

// FromName looks up a primitive by its ASCII name.
func FromName(name string) (Primitive, bool) {
	p, ok := byName[name]
	return p, ok
}

// FromGlyph looks up a primitive by its glyph.
func FromGlyph(glyph rune) (Primitive, bool) {
	p, ok := byGlyph[glyph]
	return p, ok
}

// IsGlyph reports whether the rune is a registered primitive glyph.
func IsGlyph(glyph rune) bool {
	_, ok := byGlyph[glyph]
	return ok
}

// All returns every registered primitive, in registry order. The returned
// slice is a copy and may be modified by the caller.
func All() []Primitive {
	out := make([]Primitive, len(registry))
	copy(out, registry)
	return out
}
