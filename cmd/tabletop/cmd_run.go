package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tabletop/internal/config"
	"tabletop/internal/interpreter"
)

// runCmd executes script files against one robot
var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Run command scripts (use - for stdin)",
	Long: `Parses and runs each script in order on the same robot, so a later
script continues from where the previous one left the robot.
A script that fails to parse is not run at all.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScripts,
}

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Parse scripts without running them",
	Args:  cobra.MinimumNArgs(1),
	RunE:  checkScripts,
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config [PATH]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func runScripts(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	for _, name := range args {
		script, err := loadScript(cmd, name)
		if err != nil {
			return err
		}
		outcomes := script.Exec(ctx)

		rejected := 0
		for _, o := range outcomes {
			if o.Err != nil {
				rejected++
			}
		}
		logger.Info("script finished",
			zap.String("script", name),
			zap.Int("commands", len(outcomes)),
			zap.Int("rejected", rejected),
			zap.Stringer("state", ctx.Robot.Report()))
	}
	return nil
}

func checkScripts(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, name := range args {
		script, err := loadScript(cmd, name)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), err)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d commands)\n", name, len(script.Commands))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed to parse", failed, len(args))
	}
	return nil
}

func loadScript(cmd *cobra.Command, name string) (*interpreter.Script, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return interpreter.ParseReader(name, r)
}
