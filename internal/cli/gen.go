package cli

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// GenOptions holds the flags of the gen command.
type GenOptions struct {
	*RootOptions

	Output   string
	Watch    bool
	Jobs     int
	Debounce time.Duration
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen [flags] file...",
		Short: "Generate Go code from declaration files",
		Long: `Generate the Go code for each declaration file. By default the code
for decls.cue is written to decls` + OutputSuffix + ` in the same directory.

With --watch, gen keeps running and regenerates the code whenever a
declaration file changes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (only with a single declaration file)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "regenerate when declaration files change")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files to generate concurrently")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", 100*time.Millisecond, "with --watch, how long to wait for changes to settle")

	return cmd
}

func runGen(ctx context.Context, opts *GenOptions, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Output != "" && len(files) > 1 {
		return fmt.Errorf("cannot use --output with more than one declaration file")
	}
	if opts.Jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1")
	}
	if err := checkOutputs(files, opts.Output); err != nil {
		return err
	}
	logger := opts.Logger()
	if opts.Watch {
		w := &Watcher{
			Files:    files,
			Debounce: opts.Debounce,
			Logger:   logger,
			Generate: func(path string) error {
				return generate(path, opts.Output, logger)
			},
		}
		return w.Run(ctx)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return generate(path, opts.Output, logger)
		})
	}
	return g.Wait()
}
