package main

import (
	"github.com/spf13/cobra"
)

// newPathCmd answers one pair given on the command line.
func newPathCmd(a *app) *cobra.Command {
	var (
		output string
		byID   bool
	)
	cmd := &cobra.Command{
		Use:   "path SOURCE TARGET",
		Short: "Print the chain between two actors",
		Long: `Print the shortest chain between two actors named on the command line.

Names shared by several people are rejected; pass --ids and use person ids
instead.

Examples:
  degrees path "Kevin Bacon" "Cary Elwes"
  degrees path 102 144 --ids --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			sourceID, targetID := args[0], args[1]
			if !byID {
				var err error
				if sourceID, err = a.data.Resolve(args[0], nil); err != nil {
					return err
				}
				if targetID, err = a.data.Resolve(args[1], nil); err != nil {
					return err
				}
			}
			chain, err := a.finder.Connect(cmd.Context(), sourceID, targetID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, chain)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json, yaml")
	cmd.Flags().BoolVar(&byID, "ids", false, "treat SOURCE and TARGET as person ids")
	return cmd
}
