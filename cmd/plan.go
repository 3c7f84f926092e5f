package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	pb "platelayout/pipbot"
)

func (a *app) planCmd() *cobra.Command {
	var (
		grouped bool
		gcode   bool
		labware string
		plate   string
		rate    float64
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "maps the sequence onto a plate on the deck",
		Long: `plan resolves every take of the sequence to a deck position on the named
plate and estimates head travel time at the given rate. With --gcode the moves
are printed as G-code instead. Nothing is sent to the bot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg := a.cfg
			f := cmd.Flags()
			if f.Changed("labware") {
				cfg.Labware = labware
			}
			if f.Changed("plate") {
				cfg.Plate = plate
			}
			if f.Changed("rate") {
				cfg.Rate = rate
			}

			deck, err := cfg.Deck()
			if err != nil {
				return err
			}
			m, err := deck.Matrix(cfg.Plate)
			if err != nil {
				return err
			}
			g, err := a.generator(cmd)
			if err != nil {
				return err
			}

			p := pb.NewPlanner(m, cfg.Rate)
			p.Logger = logger
			steps, err := p.Plan(g, grouped)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if gcode {
				return pb.WriteGCode(out, steps, cfg.Rate)
			}
			for i, s := range steps {
				names := make([]string, len(s.Wells))
				for j, w := range s.Wells {
					names[j] = w.Name()
				}
				if _, err := fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", i+1, strings.Join(names, " "),
					s.Target, s.Elapsed.Round(time.Millisecond)); err != nil {
					return err
				}
			}
			var total time.Duration
			if len(steps) > 0 {
				total = steps[len(steps)-1].Elapsed
			}
			logger.Info("planned", "plate", m.Name, "steps", len(steps), "travel", total.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().BoolVar(&grouped, "grouped", false, "one stop per group")
	cmd.Flags().BoolVar(&gcode, "gcode", false, "print G-code moves")
	cmd.Flags().StringVar(&labware, "labware", "", "TOML labware file (default built-in deck)")
	cmd.Flags().StringVar(&plate, "plate", pb.DefaultPlate, "matrix to plan on")
	cmd.Flags().Float64Var(&rate, "rate", pb.DefaultRate, "head speed in mm/s")
	return cmd
}
