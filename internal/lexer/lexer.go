// Package lexer scans Uiua source text into tokens.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sj4nes/uiua/internal/token"
	"github.com/sj4nes/uiua/primitives"
)

// Error is a lexical error with the position where it occurred.
type Error struct {
	Message  string
	Position token.Position
}

func (e *Error) Error() string { return e.Message }

// Lexer scans an input string and produces tokens one at a time.
type Lexer struct {
	input     string
	pos       int // byte offset of the next rune to read
	line      int // 0-indexed current line
	lineStart int // byte offset of the start of the current line
	file      string
}

// New creates a Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetFilename sets the file name used in token positions and errors.
func (l *Lexer) SetFilename(file string) {
	l.file = file
}

func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.pos - l.lineStart,
		File:      l.file,
	}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos+offset:])
	return r
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.lineStart = l.pos
	}
	return r
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Next returns the next token from the input. At the end of the input it
// returns an EOF token. A non-nil error is returned along with an ILLEGAL
// token when the input cannot be tokenized.
func (l *Lexer) Next() (token.Token, error) {
	for {
		r := l.peek()
		if r == ' ' || r == '\t' || r == '\r' {
			l.advance()
			continue
		}
		break
	}

	start := l.position()
	r := l.peek()

	switch {
	case r == 0:
		return l.emit(token.EOF, "", start), nil
	case r == '\n':
		l.advance()
		return l.emit(token.NEWLINE, "\n", start), nil
	case r == '#':
		return l.readComment(start), nil
	case r == '=':
		l.advance()
		return l.emit(token.ASSIGN, "=", start), nil
	case r == '_':
		l.advance()
		return l.emit(token.UNDERSCORE, "_", start), nil
	case r == '[':
		l.advance()
		return l.emit(token.LBRACKET, "[", start), nil
	case r == ']':
		l.advance()
		return l.emit(token.RBRACKET, "]", start), nil
	case r == '(':
		l.advance()
		return l.emit(token.LPAREN, "(", start), nil
	case r == ')':
		l.advance()
		return l.emit(token.RPAREN, ")", start), nil
	case r == '|':
		l.advance()
		return l.emit(token.BAR, "|", start), nil
	case isDigit(r) || r == '¯' && isDigit(l.peekAt(len("¯"))):
		return l.readNumber(start), nil
	case r == '\'':
		return l.readChar(start)
	case r == '"':
		return l.readString(start)
	case r == '.' && isASCIILetter(l.peekAt(1)):
		return l.readSelector(start), nil
	case primitives.IsGlyph(r):
		l.advance()
		return l.emit(token.PRIMITIVE, string(r), start), nil
	case isASCIILetter(r):
		return l.readIdent(start), nil
	default:
		l.advance()
		tok := l.emit(token.ILLEGAL, string(r), start)
		return tok, &Error{
			Message:  fmt.Sprintf("unexpected character %q", r),
			Position: start,
		}
	}
}

// Tokenize consumes the entire input and returns all tokens up to and
// including EOF, along with any lexical errors encountered.
func (l *Lexer) Tokenize() ([]token.Token, []error) {
	var toks []token.Token
	var errs []error
	for {
		tok, err := l.Next()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, errs
		}
	}
}

func (l *Lexer) emit(typ token.Type, literal string, start token.Position) token.Token {
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) readComment(start token.Position) token.Token {
	l.advance() // '#'
	var b strings.Builder
	for {
		r := l.peek()
		if r == 0 || r == '\n' {
			break
		}
		l.advance()
		b.WriteRune(r)
	}
	text := strings.TrimPrefix(b.String(), " ")
	return l.emit(token.COMMENT, text, start)
}

func (l *Lexer) readNumber(start token.Position) token.Token {
	if l.peek() == '¯' {
		l.advance()
	}
	for isDigit(l.peek()) {
		l.advance()
	}
	// A fraction requires a digit after the dot, so that "1.abc" lexes as
	// a number followed by a selector.
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.emit(token.NUMBER, l.input[start.Char:l.pos], start)
}

func (l *Lexer) readIdent(start token.Position) token.Token {
	for isASCIILetter(l.peek()) {
		l.advance()
	}
	return l.emit(token.IDENT, l.input[start.Char:l.pos], start)
}

func (l *Lexer) readSelector(start token.Position) token.Token {
	l.advance() // '.'
	for isASCIILetter(l.peek()) {
		l.advance()
	}
	return l.emit(token.SELECTOR, l.input[start.Char:l.pos], start)
}

func (l *Lexer) readChar(start token.Position) (token.Token, error) {
	l.advance() // opening quote
	for {
		r := l.peek()
		if r == 0 || r == '\n' {
			tok := l.emit(token.ILLEGAL, l.input[start.Char:l.pos], start)
			return tok, &Error{Message: "unterminated character literal", Position: start}
		}
		l.advance()
		if r == '\\' {
			if esc := l.peek(); esc != 0 && esc != '\n' {
				l.advance()
			}
			continue
		}
		if r == '\'' {
			break
		}
	}
	return l.emit(token.CHAR, l.input[start.Char:l.pos], start), nil
}

func (l *Lexer) readString(start token.Position) (token.Token, error) {
	l.advance() // opening quote
	for {
		r := l.peek()
		if r == 0 || r == '\n' {
			tok := l.emit(token.ILLEGAL, l.input[start.Char:l.pos], start)
			return tok, &Error{Message: "unterminated string literal", Position: start}
		}
		l.advance()
		if r == '\\' {
			if esc := l.peek(); esc != 0 && esc != '\n' {
				l.advance()
			}
			continue
		}
		if r == '"' {
			break
		}
	}
	return l.emit(token.STRING, l.input[start.Char:l.pos], start), nil
}
