package format

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/sj4nes/uiua/ast"
)

// Oracle resolves names incrementally as the document is walked. Item
// registers a fully rendered item so that later identifiers see it;
// IsBound reports whether a name is currently bound by user code.
type Oracle interface {
	Item(item ast.Item)
	IsBound(name string) bool
}

// State is the mutable state of one formatting run: the output buffer, a
// flag recording that the last thing written was a strand, and the oracle
// being fed as items are rendered. One State serves exactly one run.
type State struct {
	buf       bytes.Buffer
	wasStrand bool
	oracle    Oracle
}

func newState(oracle Oracle) *State {
	return &State{oracle: oracle}
}

// push appends text to the output. Any append clears wasStrand, which
// guarantees the strand spacing rule fires at most once per strand.
func (s *State) push(text string) {
	s.wasStrand = false
	s.buf.WriteString(text)
}

func (s *State) lastRune() rune {
	r, _ := utf8.DecodeLastRune(s.buf.Bytes())
	return r
}

func (s *State) spaceIfWasStrand() {
	if s.wasStrand {
		s.push(" ")
	}
}

// spaceIfAlphanumeric separates the next token from a preceding
// alphanumeric character, so that independently rendered tokens cannot
// fuse into one larger token on re-parse.
func (s *State) spaceIfAlphanumeric() {
	s.spaceIfWasStrand()
	if r := s.lastRune(); unicode.IsLetter(r) || unicode.IsNumber(r) {
		s.push(" ")
	}
}

// spaceIfAlphabetic is the looser guard used before identifiers and
// selectors: a digit followed by a letter is already two tokens, but a
// letter followed by more letters is not.
func (s *State) spaceIfAlphabetic() {
	s.spaceIfWasStrand()
	if unicode.IsLetter(s.lastRune()) {
		s.push(" ")
	}
}
