package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"platelayout/layout"
)

func (a *app) sequenceCmd() *cobra.Command {
	var (
		grouped bool
		column  int
	)
	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "prints the order wells are taken in",
		Long: `sequence takes wells until the layout is exhausted and prints one line per
take. With --column only wells from that column are taken; with --grouped each
line is one group.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}
			var col *int
			if cmd.Flags().Changed("column") {
				col = &column
			}
			n, err := drain(cmd.OutOrStdout(), g, col, grouped)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("sequence done", "takes", n, "left", g.Len())
			return nil
		},
	}
	cmd.Flags().BoolVar(&grouped, "grouped", false, "take a group at a time")
	cmd.Flags().IntVarP(&column, "column", "c", 0, "only take wells starting in this column")
	return cmd
}

func take(g *layout.Generator, column *int, grouped bool) []layout.Well {
	if grouped {
		return g.NextGroup(column)
	}
	if w, ok := g.Next(column); ok {
		return []layout.Well{w}
	}
	return nil
}

func drain(w io.Writer, g *layout.Generator, column *int, grouped bool) (int, error) {
	n := 0
	for wells := take(g, column, grouped); len(wells) > 0; wells = take(g, column, grouped) {
		n++
		if err := writeTake(w, n, wells); err != nil {
			return n, err
		}
	}
	return n, nil
}

func writeTake(w io.Writer, n int, wells []layout.Well) error {
	names := make([]string, len(wells))
	coords := make([]string, len(wells))
	for i, well := range wells {
		names[i] = well.Name()
		coords[i] = well.String()
	}
	_, err := fmt.Fprintf(w, "%d\t%s\t%s\n", n, strings.Join(names, " "), strings.Join(coords, " "))
	return err
}
