package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/cip999/cplib"
	"github.com/cip999/cplib/textio"
	"github.com/cip999/cplib/validate"
)

func newIntsCmd() *cobra.Command {
	var (
		count       int
		minValue    int64
		maxValue    int64
		distinct    bool
		sorted      bool
		strictOrder bool
		decreasing  bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "ints <file>",
		Short: "Read a file of integers and validate constraints on them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := textio.Open(args[0])
			if err != nil {
				return err
			}
			defer r.Close()
			if strict {
				r.MakeStrict()
			}

			v, err := readInts(r, count, strict)
			if err != nil {
				return err
			}
			log.Infof("read %d integers from %s", len(v), args[0])

			res := validate.Success("File parsed")
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
				res = validate.And(res, validate.AllBetween(v, minValue, maxValue))
			}
			if distinct {
				res = validate.And(res, validate.Distinct(v))
			}
			if sorted {
				res = validate.And(res, validate.Sorted(v, strictOrder, decreasing))
			}
			if err := validate.Assert(res); err != nil {
				return err
			}
			fmt.Printf("OK: %d integers\n", len(v))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "exact number of integers expected (0 = read until EOF)")
	cmd.Flags().Int64Var(&minValue, "min", math.MinInt64, "minimum allowed value")
	cmd.Flags().Int64Var(&maxValue, "max", math.MaxInt64, "maximum allowed value")
	cmd.Flags().BoolVar(&distinct, "distinct", false, "require pairwise distinct values")
	cmd.Flags().BoolVar(&sorted, "sorted", false, "require sorted values")
	cmd.Flags().BoolVar(&strictOrder, "strict-order", true, "forbid equal neighbors when --sorted")
	cmd.Flags().BoolVar(&decreasing, "decreasing", false, "require decreasing order when --sorted")
	cmd.Flags().BoolVar(&strict, "strict", false, "enforce single-space/newline separation byte for byte")
	return cmd
}

// readInts pulls integers out of the reader. With a count the file must hold
// exactly that many, newline-terminated in strict mode; without one it is
// read until EOF.
func readInts(r *textio.Reader, count int, strict bool) ([]int64, error) {
	if count > 0 {
		sep := ""
		if strict {
			sep = " "
		}
		v, err := textio.ReadIntegers[int64](r, count, sep)
		if err != nil {
			return nil, err
		}
		if strict {
			if err := r.MustBeNewline(); err != nil {
				return nil, err
			}
		} else {
			r.SkipSpaces()
		}
		if err := r.MustBeEOF(); err != nil {
			return nil, err
		}
		return v, nil
	}

	var v []int64
	for {
		n, err := r.ReadInt64()
		if errors.Is(err, cplib.ErrEOF) {
			return v, nil
		}
		if err != nil {
			return nil, err
		}
		v = append(v, n)

		// In strict mode every separator byte is accounted for: integers
		// are single-space separated, lines newline-terminated.
		if strict {
			c, err := r.ReadChar()
			if err != nil {
				return nil, cplib.NewExpected("newline")
			}
			switch c {
			case ' ':
			case '\r':
				c, err = r.ReadChar()
				if err != nil || c != '\n' {
					return nil, cplib.NewExpected("newline")
				}
				if r.AtEOF() {
					return v, nil
				}
			case '\n':
				if r.AtEOF() {
					return v, nil
				}
			default:
				return nil, cplib.NewExpected("space or newline")
			}
		}
	}
}
