package cli

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show PATH",
		Short: "Print the codel grid of a program",
		Long: `Print the codel grid of a program in text grid format.

Useful to check that --size matches the image: every codel of the output
should correspond to one square of the picture.

Example:
  piet show --size 10 hello.png`,
		Args:          onePath,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.settings(cmd)
			if err != nil {
				return err
			}
			grid, err := loadGrid(args[0], cfg)
			if err != nil {
				return err
			}
			if err := grid.Display(cmd.OutOrStdout(), nil); err != nil {
				return WrapExitError(ExitFailure, "failed to write grid", err)
			}
			return nil
		},
	}
}
