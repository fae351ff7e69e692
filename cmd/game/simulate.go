package main

import (
	"github.com/spf13/cobra"

	"github.com/younwookim/skyline/internal/application/sim"
	"github.com/younwookim/skyline/internal/application/system"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		ms    float64
		left  bool
		right bool
		jump  bool
		cont  bool
		level int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Advance a fresh run headlessly and print the snapshot",
		Long: `Create a fresh simulation, optionally press continue and jump, hold the
given direction for --ms milliseconds of fixed ticks and print the snapshot.

Examples:
  game simulate --continue --right --ms 3000
  game simulate --continue --jump --ms 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			s, err := sim.New(cfg, sim.WithLogger(logger), sim.WithStartLevel(level))
			if err != nil {
				return err
			}

			if cont {
				s.Continue()
			}
			if jump {
				// Settle onto the floor first so the jump is legal
				s.Update(cfg.Physics.FixedDT())
				s.Jump()
			}
			s.SetInput(system.Input{Left: left, Right: right})
			events := s.AdvanceTime(ms)

			logger.Debug("simulated", "ms", ms, "ticks", s.Ticks(), "events", len(events))
			return printSnapshot(cmd, s.Snapshot())
		},
	}

	cmd.Flags().Float64Var(&ms, "ms", 1000, "Milliseconds of simulated time")
	cmd.Flags().BoolVar(&left, "left", false, "Hold left")
	cmd.Flags().BoolVar(&right, "right", false, "Hold right")
	cmd.Flags().BoolVar(&jump, "jump", false, "Jump once at the start")
	cmd.Flags().BoolVar(&cont, "continue", false, "Press continue before advancing (leaves the start screen)")
	cmd.Flags().IntVar(&level, "level", 1, "Level to start from")
	return cmd
}
