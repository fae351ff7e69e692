package main

import (
	"github.com/spf13/cobra"

	"github.com/younwookim/skyline/internal/application/game"
	"github.com/younwookim/skyline/internal/application/scene/playing"
	"github.com/younwookim/skyline/internal/application/sim"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var (
		record string
		level  int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		Long: `Open the game window and play the campaign.

Controls:
  Left/Right       - Run
  Space/Up         - Jump
  Z/X/A/B          - Fire (after picking up the laser)
  Enter            - Start / retry / next level
  F5               - Save recording now
  Esc              - Quit`,
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

			display := cfg.Physics.Display
			g := game.New(playing.New(s, logger, record), int(display.ViewWidth), int(display.ViewHeight), cfg.Physics.FixedDT())
			g.SetLogger(logger)

			logger.Info("starting", "levels", cfg.MaxLevel(), "startLevel", level, "tps", g.TPS())
			return g.Run("Skyline Sprint")
		},
	}

	cmd.Flags().StringVar(&record, "record", "", "Record input to file (e.g., --record replay.json)")
	cmd.Flags().IntVar(&level, "level", 1, "Level to start (and restart) the run from")
	return cmd
}
