// game is a side-scrolling platformer with a deterministic headless core.
//
// Usage:
//
//	game play                 - Open the game window
//	game replay <file>        - Re-run a recorded session headlessly
//	game simulate --ms 2000   - Advance a fresh run and print the snapshot
//	game levels               - List the campaign stages
//
// Global flags:
//
//	--config <dir>      - Load physics.yaml and stages/ from a directory
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/skyline/internal/infrastructure/config"
)

// rootOptions holds the persistent flags shared by every subcommand
type rootOptions struct {
	configDir string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "game",
		Short: "Skyline Sprint - a fixed-step 2D platformer",
		Long: `Skyline Sprint is a side-scrolling platformer. Run right, jump gaps,
stomp or shoot turrets, collect coins and reach the beacon at the end of
each of the four levels.

Examples:
  game play
  game play --level 3 --record run.json
  game replay run.json
  game simulate --continue --right --ms 3000
  game levels`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configDir, "config", "", "Directory with physics.yaml and stages/ (default: embedded)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(newPlayCmd(opts))
	root.AddCommand(newReplayCmd(opts))
	root.AddCommand(newSimulateCmd(opts))
	root.AddCommand(newLevelsCmd(opts))

	return root
}

// logger builds the stderr logger at the requested level
func (o *rootOptions) logger() (*log.Logger, error) {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyline",
		Level:           level,
	})
	return logger, nil
}

// loadConfig reads the configuration from --config or the embedded defaults
func (o *rootOptions) loadConfig() (*config.GameConfig, error) {
	loader := config.NewDefaultLoader()
	if o.configDir != "" {
		loader = config.NewLoader(o.configDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
