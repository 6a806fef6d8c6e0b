// Package parser converts Uiua source text into a sequence of syntax tree
// items.
//
// A parser is created by calling New() with the input source. The parser
// should then be used only once, by calling Parse() to produce the items.
package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/sj4nes/uiua/ast"
	"github.com/sj4nes/uiua/internal/lexer"
	"github.com/sj4nes/uiua/internal/token"
	"github.com/sj4nes/uiua/primitives"
)

// Parse the provided input as Uiua source code and return the item
// sequence. This is a shorthand way to create a Parser and call Parse on it.
func Parse(input string, options ...Option) ([]ast.Item, error) {
	return New(input, options...).Parse()
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in positions and errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// Parser object
type Parser struct {
	// l is our lexer
	l *lexer.Lexer

	// the full input, used to extract source lines for error messages
	input string

	// curToken holds the current token from the lexer.
	curToken token.Token

	// peekToken holds the next token from the lexer.
	peekToken token.Token

	// parsing errors collected during parsing
	errors []ParserError

	// The filename of the input
	filename string
}

// New creates a Parser for the given input.
func New(input string, options ...Option) *Parser {
	p := &Parser{input: input}
	for _, opt := range options {
		opt(p)
	}
	p.l = lexer.New(input)
	if p.filename != "" {
		p.l.SetFilename(p.filename)
	}
	// Prime the token pump
	p.next()
	p.next()
	return p
}

// Parse runs the parser and returns the document's items. The returned
// error, if non-nil, is an *Errors wrapping every diagnostic collected.
// Items parsed before an error are still returned.
func (p *Parser) Parse() ([]ast.Item, error) {
	var items []ast.Item
	for p.curToken.Type != token.EOF {
		if item := p.parseItem(); item != nil {
			items = append(items, item)
		}
	}
	if len(p.errors) > 0 {
		return items, NewErrors(p.errors)
	}
	return items, nil
}

// next advances the token window. Lexical errors are recorded as syntax
// errors and the offending token is skipped.
func (p *Parser) next() {
	p.curToken = p.peekToken
	for {
		tok, err := p.l.Next()
		if err != nil {
			p.errors = append(p.errors, NewSyntaxError(ErrorOpts{
				Cause:         err,
				File:          p.filename,
				StartPosition: tok.StartPosition,
				EndPosition:   tok.EndPosition,
				SourceCode:    p.sourceLine(tok.StartPosition),
			}))
			continue
		}
		p.peekToken = tok
		return
	}
}

func (p *Parser) errorAt(tok token.Token, format string, args ...any) {
	p.errors = append(p.errors, NewSyntaxError(ErrorOpts{
		Message:       fmt.Sprintf(format, args...),
		File:          p.filename,
		StartPosition: tok.StartPosition,
		EndPosition:   tok.EndPosition,
		SourceCode:    p.sourceLine(tok.StartPosition),
	}))
}

// sourceLine returns the line of input containing the given position.
func (p *Parser) sourceLine(pos token.Position) string {
	start := pos.LineStart
	if start > len(p.input) {
		return ""
	}
	end := start
	for end < len(p.input) && p.input[end] != '\n' {
		end++
	}
	return p.input[start:end]
}

// skipToLineEnd discards tokens up to the next line boundary, so that one
// malformed item produces one diagnostic instead of a cascade.
func (p *Parser) skipToLineEnd() {
	for p.curToken.Type != token.NEWLINE && p.curToken.Type != token.EOF {
		p.next()
	}
}

// atLineEnd reports whether the current token terminates the current item.
// A trailing comment ends the words before it and becomes its own item on
// the following line.
func (p *Parser) atLineEnd() bool {
	switch p.curToken.Type {
	case token.NEWLINE, token.EOF, token.COMMENT:
		return true
	}
	return false
}

func (p *Parser) parseItem() ast.Item {
	switch p.curToken.Type {
	case token.NEWLINE:
		// A single newline is an item terminator, already consumed by the
		// preceding item. A run of newlines here means blank lines, which
		// collapse to one Newlines marker.
		pos := p.curToken.StartPosition
		for p.curToken.Type == token.NEWLINE {
			p.next()
		}
		return &ast.Newlines{NewlinePos: pos}
	case token.COMMENT:
		item := &ast.Comment{
			HashPos: p.curToken.StartPosition,
			Text:    p.curToken.Literal,
		}
		p.next()
		p.endItem()
		return item
	case token.IDENT:
		if p.peekToken.Type == token.ASSIGN {
			return p.parseBinding()
		}
	}
	return p.parseWordsItem()
}

// endItem consumes the single newline that terminates an item, if present.
// Further newlines belong to a Newlines item.
func (p *Parser) endItem() {
	if p.curToken.Type == token.NEWLINE {
		p.next()
	}
}

func (p *Parser) parseBinding() ast.Item {
	name := &ast.Ident{
		NamePos: p.curToken.StartPosition,
		Name:    p.curToken.Literal,
	}
	p.next() // name
	assignPos := p.curToken.StartPosition
	p.next() // "="
	var words []ast.Word
	for !p.atLineEnd() {
		word := p.parseWord()
		if word == nil {
			p.skipToLineEnd()
			break
		}
		words = append(words, word)
	}
	p.endItem()
	return &ast.Binding{Name: name, AssignPos: assignPos, Words: words}
}

func (p *Parser) parseWordsItem() ast.Item {
	var words []ast.Word
	for !p.atLineEnd() {
		word := p.parseWord()
		if word == nil {
			p.skipToLineEnd()
			break
		}
		words = append(words, word)
	}
	p.endItem()
	if len(words) == 0 {
		return nil
	}
	return &ast.Words{List: words}
}

// parseWord parses one word, including strand continuation. It returns nil
// after recording a diagnostic for an unexpected token.
func (p *Parser) parseWord() ast.Word {
	word := p.parseWordAtom()
	if word == nil {
		return nil
	}
	if p.curToken.Type != token.UNDERSCORE {
		return word
	}
	members := []ast.Word{word}
	for p.curToken.Type == token.UNDERSCORE {
		p.next() // "_"
		member := p.parseWordAtom()
		if member == nil {
			return nil
		}
		members = append(members, member)
	}
	return &ast.Strand{Words: members}
}

func (p *Parser) parseWordAtom() ast.Word {
	tok := p.curToken
	switch tok.Type {
	case token.NUMBER:
		p.next()
		return p.parseNumber(tok)
	case token.CHAR:
		p.next()
		return p.parseChar(tok)
	case token.STRING:
		p.next()
		return p.parseString(tok)
	case token.SELECTOR:
		p.next()
		return &ast.Selector{TextPos: tok.StartPosition, Text: tok.Literal}
	case token.IDENT:
		p.next()
		ident := &ast.Ident{NamePos: tok.StartPosition, Name: tok.Literal}
		if prim, ok := primitives.FromName(tok.Literal); ok && prim.IsModifier() {
			return p.parseModified(ident)
		}
		return ident
	case token.PRIMITIVE:
		p.next()
		glyph, _ := utf8.DecodeRuneInString(tok.Literal)
		prim, ok := primitives.FromGlyph(glyph)
		if !ok {
			p.errorAt(tok, "unknown primitive %q", tok.Literal)
			return nil
		}
		word := &ast.Primitive{PrimPos: tok.StartPosition, Prim: prim}
		if prim.IsModifier() {
			return p.parseModified(word)
		}
		return word
	case token.LBRACKET:
		return p.parseArray()
	case token.LPAREN:
		return p.parseFunc()
	default:
		p.errorAt(tok, "unexpected token %q", tok.Literal)
		return nil
	}
}

// parseModified attaches the following word, if any, to a modifier. A
// modifier with nothing to modify is left as a plain word.
func (p *Parser) parseModified(modifier ast.Word) ast.Word {
	switch p.curToken.Type {
	case token.NEWLINE, token.EOF, token.RBRACKET, token.RPAREN, token.BAR:
		return modifier
	}
	operand := p.parseWord()
	if operand == nil {
		return nil
	}
	return &ast.Modified{Modifier: modifier, Operand: operand}
}

func (p *Parser) parseArray() ast.Word {
	lbracket := p.curToken.StartPosition
	p.next() // "["
	var words []ast.Word
	for p.curToken.Type != token.RBRACKET {
		if p.atLineEnd() {
			p.errorAt(p.curToken, "expected ']'")
			return nil
		}
		word := p.parseWord()
		if word == nil {
			return nil
		}
		words = append(words, word)
	}
	rbracket := p.curToken.StartPosition
	p.next() // "]"
	return &ast.Array{Lbracket: lbracket, Words: words, Rbracket: rbracket}
}

func (p *Parser) parseFunc() ast.Word {
	lparen := p.curToken.StartPosition
	p.next() // "("
	bodyStart := lparen
	funcs := []*ast.Func{{Lparen: bodyStart}}
	for p.curToken.Type != token.RPAREN {
		if p.atLineEnd() {
			p.errorAt(p.curToken, "expected ')'")
			return nil
		}
		if p.curToken.Type == token.BAR {
			bodyStart = p.curToken.StartPosition
			p.next() // "|"
			funcs = append(funcs, &ast.Func{Lparen: bodyStart})
			continue
		}
		word := p.parseWord()
		if word == nil {
			return nil
		}
		last := funcs[len(funcs)-1]
		last.Body = append(last.Body, word)
	}
	rparen := p.curToken.StartPosition
	p.next() // ")"
	for _, f := range funcs {
		f.Rparen = rparen
	}
	if len(funcs) == 1 {
		return funcs[0]
	}
	return &ast.FuncArray{Lparen: lparen, Funcs: funcs, Rparen: rparen}
}
