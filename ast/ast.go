// Package ast defines the abstract syntax tree representation of Uiua code.
package ast

import "github.com/sj4nes/uiua/internal/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Item represents one top-level document element. Items appear in linear
// document order, and that order is semantically significant: it drives
// which names are bound at any given point in the document.
type Item interface {
	Node
	itemNode()
}

// Word represents one syntactic unit inside an expression. Words nest
// recursively via strands, arrays, function literals, and modifiers.
type Word interface {
	Node
	wordNode()
}
