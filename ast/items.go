package ast

import (
	"bytes"

	"github.com/sj4nes/uiua/internal/token"
)

// Words is an item node holding one line of words.
type Words struct {
	List []Word // the words, in source order; never empty
}

func (x *Words) itemNode() {}

func (x *Words) Pos() token.Position { return x.List[0].Pos() }
func (x *Words) End() token.Position { return x.List[len(x.List)-1].End() }

func (x *Words) String() string {
	var out bytes.Buffer
	for i, w := range x.List {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(w.String())
	}
	return out.String()
}

// Binding is an item node that associates a name with a word sequence.
type Binding struct {
	Name      *Ident         // the bound name
	AssignPos token.Position // position of "="
	Words     []Word         // the defining words
}

func (x *Binding) itemNode() {}

func (x *Binding) Pos() token.Position { return x.Name.Pos() }
func (x *Binding) End() token.Position {
	if n := len(x.Words); n > 0 {
		return x.Words[n-1].End()
	}
	return x.AssignPos.Advance(1)
}

func (x *Binding) String() string {
	var out bytes.Buffer
	out.WriteString(x.Name.String())
	out.WriteString(" = ")
	for i, w := range x.Words {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(w.String())
	}
	return out.String()
}

// Comment is an item node holding the verbatim text of a comment.
type Comment struct {
	HashPos token.Position // position of "#"
	Text    string         // comment text, without the "#" marker
}

func (x *Comment) itemNode() {}

func (x *Comment) Pos() token.Position { return x.HashPos }
func (x *Comment) End() token.Position { return x.HashPos.Advance(1 + len(x.Text)) }

func (x *Comment) String() string { return "# " + x.Text }

// Newlines is an item node marking one or more blank lines between items.
// It renders to nothing; the blank line comes from the per-item terminator.
type Newlines struct {
	NewlinePos token.Position // position of the first blank line
}

func (x *Newlines) itemNode() {}

func (x *Newlines) Pos() token.Position { return x.NewlinePos }
func (x *Newlines) End() token.Position { return x.NewlinePos.Advance(1) }

func (x *Newlines) String() string { return "" }
