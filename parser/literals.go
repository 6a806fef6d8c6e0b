package parser

import (
	"strconv"
	"strings"

	"github.com/sj4nes/uiua/ast"
	"github.com/sj4nes/uiua/internal/token"
)

// parseNumber converts a NUMBER token into a Number node. The lexer
// guarantees the literal's shape, so a parse failure here is a bug.
func (p *Parser) parseNumber(tok token.Token) *ast.Number {
	text := strings.Replace(tok.Literal, "¯", "-", 1)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.errorAt(tok, "invalid number literal %q", tok.Literal)
		return &ast.Number{ValuePos: tok.StartPosition, Literal: tok.Literal}
	}
	return &ast.Number{
		ValuePos: tok.StartPosition,
		Literal:  tok.Literal,
		Value:    value,
	}
}

// parseChar converts a CHAR token into a Char node. The token literal
// includes the surrounding quotes. Escapes follow quoted-literal rules,
// matching what the formatter emits.
func (p *Parser) parseChar(tok token.Token) *ast.Char {
	body := tok.Literal
	if len(body) >= 2 {
		body = body[1 : len(body)-1]
	}
	value, _, tail, err := strconv.UnquoteChar(body, '\'')
	if err != nil {
		p.errorAt(tok, "invalid character literal %s", tok.Literal)
		return &ast.Char{ValuePos: tok.StartPosition, Literal: tok.Literal}
	}
	if tail != "" {
		p.errorAt(tok, "character literal must contain exactly one character")
		return &ast.Char{ValuePos: tok.StartPosition, Literal: tok.Literal}
	}
	return &ast.Char{
		ValuePos: tok.StartPosition,
		Literal:  tok.Literal,
		Value:    value,
	}
}

// parseString converts a STRING token into a String node. The token
// literal includes the surrounding quotes.
func (p *Parser) parseString(tok token.Token) *ast.String {
	value, err := strconv.Unquote(tok.Literal)
	if err != nil {
		p.errorAt(tok, "invalid string literal %s", tok.Literal)
		return &ast.String{ValuePos: tok.StartPosition, Literal: tok.Literal}
	}
	return &ast.String{
		ValuePos: tok.StartPosition,
		Literal:  tok.Literal,
		Value:    value,
	}
}
