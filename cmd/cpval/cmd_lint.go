package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cip999/cplib"
	"github.com/cip999/cplib/textio"
)

type lintStats struct {
	Lines  int
	Tokens int
}

func newLintCmd() *cobra.Command {
	var crlf bool

	cmd := &cobra.Command{
		Use:   "lint <file>",
		Short: "Check a file's whitespace grammar byte for byte",
		Long: `Checks that every line consists of tokens separated by exactly one
space, with no leading or trailing spaces, that every line (including the
last) ends with a newline, and that nothing follows the final newline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := lintFile(args[0], crlf)
			if err != nil {
				return err
			}
			log.Infof("lint passed: %s", args[0])
			fmt.Printf("OK: %d lines, %d tokens\n", stats.Lines, stats.Tokens)
			return nil
		},
	}
	cmd.Flags().BoolVar(&crlf, "crlf", false, "require \\r\\n line endings")
	return cmd
}

func lintFile(path string, crlf bool) (lintStats, error) {
	r, err := textio.Open(path)
	if err != nil {
		return lintStats{}, err
	}
	defer r.Close()
	r.MakeStrict()

	var stats lintStats
	for !r.AtEOF() {
		if err := lintLine(r, &stats, crlf); err != nil {
			return stats, fmt.Errorf("line %d: %w", stats.Lines+1, err)
		}
		stats.Lines++
	}
	return stats, nil
}

// lintLine consumes one newline-terminated line of single-space-separated
// tokens.
func lintLine(r *textio.Reader, stats *lintStats, crlf bool) error {
	for {
		if _, err := r.ReadToken(); err != nil {
			return err
		}
		stats.Tokens++

		c, err := r.ReadChar()
		if err != nil {
			return cplib.NewExpected("newline")
		}
		switch c {
		case ' ':
			continue
		case '\n':
			if crlf {
				return cplib.NewExpected("'\\r\\n' line ending")
			}
			return nil
		case '\r':
			c, err = r.ReadChar()
			if err != nil || c != '\n' {
				return cplib.NewExpected("newline")
			}
			return nil
		default:
			return cplib.NewExpected("space or newline")
		}
	}
}
