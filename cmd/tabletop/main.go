package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tabletop/internal/config"
	"tabletop/internal/interpreter"
	"tabletop/internal/logging"
	"tabletop/internal/tabletop"
)

var (
	// Global flags
	configPath string
	verbose    bool
	render     bool
	strict     bool
	width      int
	height     int

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd reads commands from stdin when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "tabletop",
	Short: "Drive a toy robot around a square tabletop",
	Long: `tabletop simulates a robot on a rectangular table.

Commands, one or more per line:
  PLACE X,Y[,FACING]   put the robot on the table (FACING: NORTH, EAST, SOUTH, WEST)
  MOVE                 step one cell forward
  LEFT, RIGHT          turn a quarter in place
  REPORT               print X,Y,FACING

Commands that would take the robot off the table are rejected and logged.
Run without arguments to type commands interactively.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := newContext(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		_, err = interpreter.Interact(ctx, "stdin", cmd.InOrStdin())
		return err
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "tabletop.yaml", "path to the YAML config")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every command")
	flags.BoolVar(&render, "render", false, "draw the table after every move")
	flags.BoolVar(&strict, "strict", false, "reject PLACE with an unknown facing instead of using NORTH")
	flags.IntVar(&width, "width", 0, "table width (overrides config)")
	flags.IntVar(&height, "height", 0, "table height (overrides config)")

	rootCmd.AddCommand(runCmd, checkCmd, initConfigCmd)
}

// setup loads config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Grid.Width = width
	}
	if flags.Changed("height") {
		cfg.Grid.Height = height
	}
	if flags.Changed("render") {
		cfg.Render.Enabled = render
	}
	if flags.Changed("strict") && strict {
		cfg.FacingPolicy = config.PolicyStrict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(cfg.Logging.Level, verbose)
	return err
}

func newContext(out io.Writer) (*interpreter.Context, error) {
	grid, err := tabletop.NewBoundedGrid(cfg.Grid.Bounds())
	if err != nil {
		return nil, err
	}
	ctx := interpreter.NewContext(grid, out, logger)
	ctx.Strict = cfg.Strict()
	ctx.Render = cfg.Render.Enabled
	ctx.Delay = cfg.Render.Delay

	logger.Debug("table ready", zap.Stringer("grid", grid), zap.String("facing_policy", cfg.FacingPolicy))
	return ctx, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
