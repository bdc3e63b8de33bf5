package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cip999/cplib"
	"github.com/cip999/cplib/textio"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the tokens a lenient reader extracts, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := textio.Open(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			count := 0
			for {
				tok, err := r.ReadToken()
				if errors.Is(err, cplib.ErrEOF) {
					break
				}
				if err != nil {
					return err
				}
				fmt.Println(tok)
				count++
			}
			log.Infof("%d tokens in %s", count, args[0])
			return nil
		},
	}
	return cmd
}
