// Package cli implements the tuplegen command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	logger *zap.Logger
}

// Logger returns the logger for commands to use.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// NewRootCommand creates the root command for tuplegen. If logger
// is nil, a production logger is built when a command runs.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	opts := &RootOptions{logger: logger}

	cmd := &cobra.Command{
		Use:   "tuplegen",
		Short: "Generate tuple types, filters and reducers",
		Long: `tuplegen reads declarations of tuples, mappers, filters and reducers
from CUE or YAML files and writes the Go code that implements them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if opts.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.Logger().Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewGraphCommand(opts))

	return cmd
}
