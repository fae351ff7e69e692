package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func newLevelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the campaign stages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			// Calculate column widths
			maxIDLen := 2 // "ID" header
			for _, s := range cfg.Stages {
				if len(s.ID) > maxIDLen {
					maxIDLen = len(s.ID)
				}
			}

			header := fmt.Sprintf("  #  %-*s  %6s  %5s  %7s  %7s  %s", maxIDLen, "ID", "Width", "Coins", "Enemies", "Weapons", "Name")
			fmt.Fprintln(out, headerStyle.Render(header))
			for i, s := range cfg.Stages {
				fmt.Fprintf(out, "  %d  %-*s  %6.0f  %5d  %7d  %7d  %s\n",
					i+1, maxIDLen, s.ID, s.Width, len(s.Coins), len(s.Enemies), len(s.Weapons), s.Name)
			}
			return nil
		},
	}
}
