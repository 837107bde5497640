package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"piet/internal/interpreter"
)

// RunOptions holds flags for running a program.
type RunOptions struct {
	*RootOptions
	Report string
}

func runProgram(cmd *cobra.Command, opts *RunOptions, path string) error {
	if err := checkReport(opts.Report); err != nil {
		return err
	}
	cfg, err := opts.settings(cmd)
	if err != nil {
		return err
	}
	grid, err := loadGrid(path, cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg, opts.Verbose)
	defer func() { _ = logger.Sync() }()

	console := interpreter.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	if cfg.Prompt {
		console.Prompt = cmd.ErrOrStderr()
	}
	cols, rows := grid.Size()
	logger.Debug("program loaded", zap.String("path", path), zap.Int("cols", cols), zap.Int("rows", rows))

	session, err := interpreter.NewSession(&interpreter.Context{
		Grid:             grid,
		IO:               console,
		Logger:           logger,
		TraceInterpreter: cfg.Debug.Interpreter,
		TraceMachine:     cfg.Debug.VM,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot start program", err)
	}

	res, err := session.Run(cfg.Limit)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("step %d failed", session.Steps()+1), err)
	}
	switch res.Reason {
	case interpreter.StopLimit:
		fmt.Fprintln(cmd.OutOrStdout(), "Steps limit reached")
	case interpreter.StopTrapped:
		fmt.Fprintln(cmd.ErrOrStderr(), "trapped")
	}
	if err := WriteReport(cmd.ErrOrStderr(), opts.Report, NewReport(session, res)); err != nil {
		return WrapExitError(ExitFailure, "failed to write report", err)
	}
	return nil
}
