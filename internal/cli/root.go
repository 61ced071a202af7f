// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go-minesweeper/internal/config"
)

// RunFunc starts the game with validated options.
type RunFunc func(opts config.Options, level logrus.Level) error

// NewRootCommand builds the minesweeper command. Flags fill config.Options,
// which are validated before run is called.
func NewRootCommand(run RunFunc) *cobra.Command {
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Play Minesweeper on a 10x10 grid",
		Long: `Play Minesweeper on a 10x10 grid.

Left click reveals a cell, right click toggles a flag, R starts a new game.
The first reveal is never a mine.

Examples:
  minesweeper
  minesweeper -m 25 --seed 42
  minesweeper --menu --log-level debug
  minesweeper --pprof localhost:6060`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := opts.Validate()
			if err != nil {
				return err
			}
			return run(opts, level)
		},
	}

	cmd.Flags().IntVarP(&opts.MineCount, "mines", "m", opts.MineCount,
		fmt.Sprintf("Mines in the first game (clamped to 0-%d)", config.MaxMineCount))
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "Random seed for mine placement, 0 picks one from the clock")
	cmd.Flags().StringVarP(&opts.LogLevel, "log-level", "l", opts.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&opts.StartMenu, "menu", opts.StartMenu, "Start from the title screen")
	cmd.Flags().StringVar(&opts.PprofAddr, "pprof", opts.PprofAddr, "Serve net/http/pprof on this address (e.g. localhost:6060)")

	return cmd
}
