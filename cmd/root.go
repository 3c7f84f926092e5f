/*
Copyright © 2023 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"platelayout/layout"
	pb "platelayout/pipbot"
)

// app is the state shared by every subcommand of one root command.
type app struct {
	cfg     pb.Config
	flags   pb.Config
	envFile []string
	verbose bool
}

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "platelayout",
		Short: "plans the order in which plate wells are visited",
		Long: `platelayout builds a non-repeating sequence of wells for a plate and
hands it out one well, or one group of replicate wells, at a time.

Defaults come from PLATELAYOUT_* environment variables or a .env file;
flags override them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	a.flags.Strategy = layout.SampleLayout
	f := root.PersistentFlags()
	f.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	f.StringSliceVar(&a.envFile, "env-file", nil, "dotenv files to read defaults from (default .env)")
	f.IntVar(&a.flags.Rows, "rows", layout.DefaultRows, "plate rows")
	f.IntVar(&a.flags.Columns, "columns", layout.DefaultColumns, "plate columns")
	f.IntVarP(&a.flags.GroupSize, "group-size", "g", layout.DefaultGroupSize, "wells per group, e.g. replicates")
	f.VarP(&a.flags.Strategy, "strategy", "s", "traversal strategy, see 'platelayout strategies'")

	root.AddCommand(a.sequenceCmd())
	root.AddCommand(a.walkCmd())
	root.AddCommand(a.planCmd())
	root.AddCommand(strategiesCmd())
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	cfg, err := pb.LoadConfig(a.envFile...)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("rows") {
		cfg.Rows = a.flags.Rows
	}
	if f.Changed("columns") {
		cfg.Columns = a.flags.Columns
	}
	if f.Changed("group-size") {
		cfg.GroupSize = a.flags.GroupSize
	}
	if f.Changed("strategy") {
		cfg.Strategy = a.flags.Strategy
	}
	a.cfg = cfg
	logger.Debug("config", "rows", cfg.Rows, "columns", cfg.Columns,
		"group", cfg.GroupSize, "strategy", cfg.Strategy)
	return nil
}

func (a *app) generator(cmd *cobra.Command) (*layout.Generator, error) {
	g, err := layout.New(a.cfg.Options()...)
	if err != nil {
		return nil, err
	}
	loggerFromContext(cmd.Context()).Debug("layout built", "strategy", g.Strategy(),
		"shape", g.Shape(), "group", g.GroupSize(), "starts", g.StartOffsets(), "wells", g.Len())
	return g, nil
}
