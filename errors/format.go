package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats diagnostics with colors and source context.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// Colors used for error formatting
var (
	colorErrorBold = color.New(color.FgRed, color.Bold)
	colorLocation  = color.New(color.FgCyan)
	colorGutter    = color.New(color.FgHiBlack)
	colorCaret     = color.New(color.FgHiRed)
)

// FormattedError represents a diagnostic ready for display.
type FormattedError struct {
	Kind        string // "syntax error", "compile error", etc.
	Message     string
	Filename    string
	Line        int
	Column      int
	EndColumn   int // for multi-character underlines
	SourceLines []SourceLineEntry
}

// SourceLineEntry represents a line of source code with its number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // true if this is the line with the error
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

// Format formats one diagnostic as a string.
func (f *Formatter) Format(err *FormattedError) string {
	var b strings.Builder

	kind := err.Kind
	if kind == "" {
		kind = "error"
	}
	b.WriteString(f.paint(colorErrorBold, kind))
	b.WriteString(": ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	gutterWidth := len(fmt.Sprintf("%d", err.Line))
	if gutterWidth < 2 {
		gutterWidth = 2
	}

	if err.Line > 0 {
		loc := SourceLocation{Filename: err.Filename, Line: err.Line, Column: err.Column}
		b.WriteString(strings.Repeat(" ", gutterWidth))
		b.WriteString(f.paint(colorLocation, " --> "+loc.String()))
		b.WriteString("\n")
	}

	for _, line := range err.SourceLines {
		if line.Text == "" && !line.IsMain {
			continue
		}
		gutter := fmt.Sprintf("%*d | ", gutterWidth, line.Number)
		b.WriteString(f.paint(colorGutter, gutter))
		b.WriteString(line.Text)
		b.WriteString("\n")
		if line.IsMain && err.Column > 0 {
			width := err.EndColumn - err.Column
			if width < 1 {
				width = 1
			}
			b.WriteString(f.paint(colorGutter, strings.Repeat(" ", gutterWidth)+" | "))
			b.WriteString(strings.Repeat(" ", err.Column-1))
			b.WriteString(f.paint(colorCaret, strings.Repeat("^", width)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatMultiple formats a list of diagnostics, separated by blank lines.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, f.Format(err))
	}
	return strings.Join(parts, "\n")
}
