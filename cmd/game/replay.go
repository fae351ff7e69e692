package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/skyline/internal/application/replay"
	"github.com/younwookim/skyline/internal/application/sim"
)

func newReplayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Re-run a recorded session headlessly",
		Long: `Feed a recording made with 'game play --record' into a fresh simulation,
one tick per recorded frame, and print the final snapshot as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.logger()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			data, err := replay.LoadReplay(args[0])
			if err != nil {
				return err
			}

			replayer := replay.NewReplayer(*data)
			s, err := sim.New(cfg, sim.WithLogger(logger), sim.WithStartLevel(replayer.Level()))
			if err != nil {
				return err
			}

			played := replayer.Play(s)
			logger.Info("replay finished", "file", args[0], "frames", played, "mode", s.Mode(), "score", s.Run().Score)

			return printSnapshot(cmd, s.Snapshot())
		},
	}
}

// printSnapshot writes the snapshot as indented JSON to the command output
func printSnapshot(cmd *cobra.Command, snap sim.Snapshot) error {
	text, err := snap.JSON()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
