// Package cli implements the command-line interface for cube.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cube"
	"github.com/SeamusWaldron/cube/internal/config"
	"github.com/SeamusWaldron/cube/internal/storage"
)

const version = "0.1.0"

// app carries global flags and the state built from them.
type app struct {
	// Global flags
	configPath string
	dbPath     string
	seed       int64
	verbose    bool

	seedSet bool
	cfg     config.Config
	logger  *log.Logger
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cube",
		Short: "N×N×N cube turn engine",
		Long: `cube - apply turns, check solved states and generate scrambles for
cubes of any size from 2×2 upwards.

Turns use standard notation: [depth]FACE[w][-|'|2], plus X, Y and Z
for whole-cube rotations. State is read and written as JSON with the
faces U, L, F, R, B and D.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default: ~/.cube/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Database file path (default: ~/.cube/cube.db)")
	rootCmd.PersistentFlags().Int64Var(&a.seed, "seed", 0, "Seed for reproducible scrambles")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		newScrambleCmd(a),
		newTurnCmd(a),
		newTestCmd(a),
		newScramblesCmd(a),
		newPlayCmd(a),
		newSessionsCmd(a),
		newStatusCmd(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "cube",
	})
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.seedSet = cmd.Flags().Changed("seed")

	a.logger.Debug("loaded config", "default_size", cfg.DefaultSize, "labeled", cfg.Labeled)
	return nil
}

// cubeOptions returns the library options for the current flags and config.
func (a *app) cubeOptions() []cube.Option {
	opts := a.cfg.CubeOptions()
	if a.seedSet {
		opts = append(opts, cube.WithSeed(a.seed))
	}
	return append(opts, cube.WithLogger(a.logger))
}

// seedValue returns the seed in effect, if any.
func (a *app) seedValue() *int64 {
	if a.seedSet {
		s := a.seed
		return &s
	}
	return a.cfg.Seed
}

// newCube builds a cube with the configured options plus extra ones.
func (a *app) newCube(size int, extra ...cube.Option) (*cube.Cube, error) {
	return cube.New(size, append(a.cubeOptions(), extra...)...)
}

// resolveDBPath returns the database path from flag, config or default.
func (a *app) resolveDBPath() (string, error) {
	if a.dbPath != "" {
		return a.dbPath, nil
	}
	if a.cfg.DBPath != "" {
		return a.cfg.DBPath, nil
	}
	return storage.DefaultDBPath()
}

// openDB opens the scramble database.
func (a *app) openDB() (*storage.DB, error) {
	path, err := a.resolveDBPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path, a.logger)
}

// splitSize reads an optional leading size argument. When the first
// argument is not a size, the configured default is used and every
// argument is returned as the remainder.
func (a *app) splitSize(args []string) (int, []string, error) {
	if len(args) == 0 {
		return a.cfg.DefaultSize, nil, nil
	}
	size, err := cube.ParseSize(args[0])
	if err == nil {
		return size, args[1:], nil
	}
	if isNumeric(args[0]) {
		return 0, nil, err
	}
	return a.cfg.DefaultSize, args, nil
}

// isNumeric reports whether s looks like a number rather than notation.
// A leading digit followed by a face letter is a depth prefix, not a size.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return strings.Trim(s, "0123456789.+-eE") == "" || strings.EqualFold(s, "inf") || strings.EqualFold(s, "nan")
}
