package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/sj4nes/uiua/errors"
)

func useColor() bool {
	if viper.GetBool("no-color") {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// printDiagnostics writes formatting diagnostics to stderr, with source
// context and colors when stderr is a terminal.
func printDiagnostics(err error) {
	formatter := errors.NewFormatter(useColor())

	switch e := err.(type) {
	case interface{ ToFormattedMultiple() []*errors.FormattedError }:
		fmt.Fprint(os.Stderr, formatter.FormatMultiple(e.ToFormattedMultiple()))
		return
	case interface{ WrappedErrors() []error }:
		for _, sub := range e.WrappedErrors() {
			printDiagnostics(sub)
		}
		return
	case interface{ Unwrap() []error }:
		for _, sub := range e.Unwrap() {
			printDiagnostics(sub)
		}
		return
	case errors.FormattableError:
		fmt.Fprint(os.Stderr, formatter.Format(e.ToFormatted()))
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
