package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check file...",
		Short: "Report errors in declaration files without generating code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if _, err := load(path, rootOpts.Logger()); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d declaration files have errors", failed, len(args))
			}
			return nil
		},
	}
	return cmd
}
