package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) walkCmd() *cobra.Command {
	var (
		grouped bool
		start   int
	)
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "takes wells round-robin across columns",
		Long: `walk takes one well (or group) from the current column, then advances the
column cursor, until the layout is exhausted. The cursor steps one past the
last column before wrapping to 0, so every cycle has one empty take.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}

			cursor := &start
			n, misses := 0, 0
			// a full cycle of the cursor with no take means nothing left is reachable
			for g.Len() > 0 && misses <= g.Shape().Columns {
				wells := take(g, cursor, grouped)
				if len(wells) == 0 {
					misses++
					logger.Debug("column empty", "column", *cursor)
				} else {
					misses = 0
					n++
					if err := writeTake(cmd.OutOrStdout(), n, wells); err != nil {
						return err
					}
				}
				cursor = g.IterateColumn(cursor)
			}
			if g.Len() > 0 {
				logger.Warn("wells outside the column range were not taken", "left", g.Len())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&grouped, "grouped", false, "take a group at a time")
	cmd.Flags().IntVar(&start, "start-column", 0, "column the cursor starts at")
	return cmd
}
