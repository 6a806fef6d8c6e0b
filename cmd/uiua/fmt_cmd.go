package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sj4nes/uiua/format"
)

var fmtCmd = &cobra.Command{
	Use:     "fmt [files...]",
	Aliases: []string{"f"},
	Short:   "Format Uiua source files",
	Long: `Rewrites Uiua source files into their canonical form. Files are
modified in place, and a file that is already canonical is left untouched.
With --check, no file is written; the command instead exits non-zero if
any file would change.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "Report files that are not canonical without writing")
	fmtCmd.Flags().Bool("stdin", false, "Format standard input to standard output")
}

func runFmt(cmd *cobra.Command, args []string) error {
	useStdin, _ := cmd.Flags().GetBool("stdin")
	check, _ := cmd.Flags().GetBool("check")

	if useStdin {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine --stdin with file arguments")
		}
		return fmtStdin()
	}
	if len(args) == 0 {
		return fmt.Errorf("no input files")
	}

	dirty := 0
	failed := 0
	for _, path := range args {
		changed, err := fmtFile(path, check)
		if err != nil {
			failed++
			printDiagnostics(err)
			continue
		}
		if changed {
			dirty++
			if check {
				fmt.Println(path)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to format %d of %d files", failed, len(args))
	}
	if check && dirty > 0 {
		return fmt.Errorf("%d files are not formatted", dirty)
	}
	return nil
}

func fmtStdin() error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}
	formatted, err := format.Source(string(data), "<stdin>")
	if err != nil {
		printDiagnostics(err)
		return fmt.Errorf("input is not valid Uiua")
	}
	fmt.Print(formatted)
	return nil
}

func fmtFile(path string, check bool) (changed bool, err error) {
	if check {
		data, err := os.ReadFile(path)
		if err != nil {
			return false, err
		}
		formatted, err := format.Source(string(data), path)
		if err != nil {
			return false, err
		}
		return formatted != string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	formatted, err := format.File(path)
	if err != nil {
		return false, err
	}
	changed = formatted != string(data)
	if changed {
		log.Debug().Str("path", path).Msg("rewrote file")
	} else {
		log.Debug().Str("path", path).Msg("already canonical")
	}
	return changed, nil
}
