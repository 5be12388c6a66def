package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/separation"
)

// newBatchCmd answers every pair listed in a CSV file.
func newBatchCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Compute chains for every source,target row of a CSV file",
		Long: `Read "source,target" name pairs, one per row, and search them in parallel.

Lines starting with # are ignored. A name shared by several people fails
the whole batch; use unique names. "-" reads from standard input.

Example pairs.csv:
  # source,target
  Kevin Bacon,Tom Hanks
  Tom Cruise,Cary Elwes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			pairs, err := a.readPairs(in)
			if err != nil {
				return err
			}
			chains, err := a.finder.ConnectAll(cmd.Context(), pairs)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, chains)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json, yaml")
	return cmd
}

// readPairs parses name pairs and resolves them to ids.
func (a *app) readPairs(in io.Reader) ([]separation.Pair, error) {
	r := csv.NewReader(in)
	r.Comment = '#'
	r.FieldsPerRecord = 2
	r.TrimLeadingSpace = true

	var pairs []separation.Pair
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read pairs: %w", err)
		}
		line, _ := r.FieldPos(0)
		source, err := a.data.Resolve(strings.TrimSpace(rec[0]), nil)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		target, err := a.data.Resolve(strings.TrimSpace(rec[1]), nil)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pairs = append(pairs, separation.Pair{Source: source, Target: target})
	}
	a.logger.Debug("Pairs read", zap.Int("count", len(pairs)))
	return pairs, nil
}
