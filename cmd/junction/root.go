package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/junction/config"
	"github.com/katalvlaran/junction/point"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand.
type app struct {
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd wires the command tree. Each call returns an independent tree,
// so tests can execute commands in-process.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "junction",
		Short: "Join 3-D junction boxes into circuits by ascending distance",
		Long: `junction reads points ("x,y,z", one per line) and joins them pair by pair,
shortest distance first, using a disjoint-set forest.

  resolve   the pair whose join puts every box into one circuit
  circuits  circuit sizes after the k closest pairs are joined
  pairs     the processing order of the closest pairs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newResolveCmd(a),
		newCircuitsCmd(a),
		newPairsCmd(a),
	)

	return root
}

// setup loads the config and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// readPoints parses the points named by args[0], falling back to the
// configured input. "-" reads from the command's stdin.
func (a *app) readPoints(cmd *cobra.Command, args []string) ([]point.Point, error) {
	src := a.cfg.Input
	if len(args) > 0 {
		src = args[0]
	}

	var r io.Reader
	if src == "" || src == "-" {
		r = cmd.InOrStdin()
		src = "stdin"
	} else {
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	pts, err := point.ParseAll(r)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("read points", zap.String("source", src), zap.Int("count", len(pts)))

	return pts, nil
}
