package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"platelayout/layout"
)

var strategyHelp = map[layout.Strategy]string{
	layout.SampleLayout:    "row blocks, then columns, then rows within a group",
	layout.PrimerLayout:    "rows within a group, then row blocks, then columns",
	layout.CdcSampleLayout: "fixed 8x12 plate in two 4 row blocks",
	layout.CdcPrimerLayout: "fixed 8x12 plate, groups of 3",
}

func strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "lists traversal strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range layout.Strategies() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", s, strategyHelp[s]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
