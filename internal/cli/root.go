package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"piet/internal/codel"
	"piet/internal/config"
	"piet/internal/interpreter"
)

// RootOptions holds flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	// Set from flags; applied over the loaded configuration only when the
	// flag was given.
	size         int
	limit        int
	unknownColor string
	prompt       bool
	debugInter   bool
	debugVM      bool
}

// NewRootCommand creates the piet command. Running it with a path executes
// the program.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	runOpts := &RunOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "piet PATH",
		Short: "Run a Piet program",
		Long: `Run a program written in Piet, the language whose programs are images.

PATH is a PNG, JPEG, GIF, BMP, TIFF or WebP image, or a .txt file in text
grid format. Settings are read from piet.toml (or --config), then from
PIET_* environment variables, then from flags.

Example:
  piet hello.png
  piet --size 10 --limit 50000 hello.png
  piet --report yaml program.txt`,
		Args:          onePath,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, runOpts, args[0])
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "path to a TOML configuration file (default ./"+config.FileName+" if present)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")
	pf.IntVarP(&opts.size, "size", "s", 1, "size of a single square codel in pixels")
	pf.StringVar(&opts.unknownColor, "unknown-color", "black", "treat pixels of other colours as black|white")

	f := cmd.Flags()
	f.IntVarP(&opts.limit, "limit", "l", 10000, "maximum steps the interpreter will go through")
	f.BoolVar(&opts.prompt, "prompt", false, "write input prompts to stderr")
	f.BoolVar(&opts.debugInter, "debug-interpreter", false, "log every interpreter step")
	f.BoolVar(&opts.debugVM, "debug-vm", false, "log every executed command")
	f.StringVar(&runOpts.Report, "report", "", "write a final state report to stderr (text|json|yaml)")

	cmd.AddCommand(NewShowCommand(opts))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flag", err)
	})

	return cmd
}

// settings loads the configuration and applies the flags that were set.
func (o *RootOptions) settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return cfg, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.CodelSize = o.size
	}
	if flags.Changed("limit") {
		cfg.Limit = o.limit
	}
	if flags.Changed("unknown-color") {
		cfg.UnknownColor = o.unknownColor
	}
	if flags.Changed("prompt") {
		cfg.Prompt = o.prompt
	}
	if flags.Changed("debug-interpreter") {
		cfg.Debug.Interpreter = o.debugInter
	}
	if flags.Changed("debug-vm") {
		cfg.Debug.VM = o.debugVM
	}
	if err := cfg.Validate(); err != nil {
		return cfg, WrapExitError(ExitCommandError, "invalid settings", err)
	}
	return cfg, nil
}

// loadGrid reads the program named by path using cfg.
func loadGrid(path string, cfg config.Config) (*interpreter.Grid, error) {
	unknown, err := cfg.Unknown()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid settings", err)
	}
	grid, err := codel.Load(path, codel.Options{Size: cfg.CodelSize, Unknown: unknown})
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "couldn't load Piet code image", err)
	}
	return grid, nil
}

// newLogger builds the console logger used for debug traces.
func newLogger(w io.Writer, cfg config.Config, verbose bool) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	level := zapcore.InfoLevel
	if verbose || cfg.Debug.Interpreter || cfg.Debug.VM {
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level))
}

// onePath accepts exactly one program path.
func onePath(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}
	return nil
}

func isValidReport(format string) bool {
	return slices.Contains(ValidReports, format)
}

func checkReport(format string) error {
	if !isValidReport(format) {
		return WrapExitError(ExitCommandError, "invalid flag",
			fmt.Errorf("invalid report format %q: must be one of %v", format, ValidReports[1:]))
	}
	return nil
}
