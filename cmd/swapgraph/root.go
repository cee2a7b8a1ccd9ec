package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/swapgraph/internal/config"
)

// app carries state shared by every subcommand once the root pre-run has
// loaded the configuration.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "swapgraph",
		Short: "Shortest paths and swap-puzzle solving",
		Long: `swapgraph searches undirected graphs with BFS or A*.

Subcommands:
  path   - Shortest path between two nodes of a graph file
  solve  - Sort a swap-puzzle grid with the fewest adjacent swaps

Examples:
  swapgraph path graph.in 1 7
  swapgraph solve --grid start.in --strategy astar`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvPath+" or ./"+config.DefaultFile+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newPathCmd(a), newSolveCmd(a))

	return root
}

// load loads the configuration and builds the stderr logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log = zerolog.New(cmd.ErrOrStderr()).
		Level(cfg.Level()).
		With().Timestamp().Str("cmd", cmd.Name()).Logger()
	if cmd.ErrOrStderr() == os.Stderr {
		a.log = a.log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return nil
}
