// Package compiler tracks which names are bound by user code as a Uiua
// document is processed in order.
//
// The compiler consumes one item at a time via Item. Because document
// order determines what is bound at any point, callers must feed items
// strictly top to bottom. The formatter relies on this to decide whether
// an identifier refers to a user binding or to a primitive: it renders an
// item first, then registers it, so a name's own defining occurrence is
// resolved against the bindings that existed before it.
package compiler

import (
	"fmt"

	"github.com/sj4nes/uiua/ast"
	"github.com/sj4nes/uiua/errors"
	"github.com/sj4nes/uiua/internal/token"
)

// CompileError is a diagnostic raised while registering an item.
type CompileError struct {
	// The error message
	Msg string
	// Start position of the error in the input
	Start token.Position
	// End position of the error in the input
	End token.Position
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error: %s", e.Msg)
}

// ToFormatted converts the compile error to a FormattedError for display.
func (e *CompileError) ToFormatted() *errors.FormattedError {
	return &errors.FormattedError{
		Kind:      "compile error",
		Message:   e.Msg,
		Filename:  e.Start.File,
		Line:      e.Start.LineNumber(),
		Column:    e.Start.ColumnNumber(),
		EndColumn: e.End.ColumnNumber(),
	}
}

// FriendlyErrorMessage returns the formatted representation of the error.
func (e *CompileError) FriendlyErrorMessage() string {
	return errors.NewFormatter(false).Format(e.ToFormatted())
}

// Compiler is the incremental binding oracle. The zero value is not
// usable; create one with New.
type Compiler struct {
	bound map[string]bool
	errs  []*CompileError
}

// New creates a Compiler with no bound names.
func New() *Compiler {
	return &Compiler{bound: map[string]bool{}}
}

// Item registers one document item. Binding items add their name to the
// bound set; all other items leave the set unchanged. Registering the
// same name twice appends a diagnostic rather than failing, so a whole
// document can be processed in one pass.
func (c *Compiler) Item(item ast.Item) {
	binding, ok := item.(*ast.Binding)
	if !ok {
		return
	}
	name := binding.Name.Name
	if c.bound[name] {
		c.errs = append(c.errs, &CompileError{
			Msg:   fmt.Sprintf("duplicate binding %q", name),
			Start: binding.Name.Pos(),
			End:   binding.Name.End(),
		})
		return
	}
	c.bound[name] = true
}

// IsBound reports whether the name is currently bound by user code.
func (c *Compiler) IsBound(name string) bool {
	return c.bound[name]
}

// Errors returns the diagnostics accumulated so far, in the order they
// were raised.
func (c *Compiler) Errors() []*CompileError {
	return c.errs
}
