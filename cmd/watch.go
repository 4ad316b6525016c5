package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/grovetools/navtree/cli"
	"github.com/grovetools/navtree/logging"
	"github.com/grovetools/navtree/manifest"
	"github.com/grovetools/navtree/nav"
	"github.com/grovetools/navtree/watch"
)

func newWatchCmd() *cobra.Command {
	var (
		strict   bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch [manifest]",
		Short: "Revalidate a sidebar manifest whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSession(cmd, args)
			if err != nil {
				return err
			}
			loader, err := newLoader(cmd, strict || s.cfg.Strict)
			if err != nil {
				return err
			}

			w, err := watch.New(s.path, loader,
				watch.WithDebounce(debounce),
				watch.WithLogger(logging.NewLogger("navtree.watch")))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pretty := logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout())
			handler := &cli.ErrorHandler{Verbose: cli.GetOptions(cmd).Verbose, Out: cmd.ErrOrStderr()}
			pretty.Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", w.Path()))

			return w.Run(ctx, func(m *manifest.Manifest, err error) {
				stamp := time.Now().Format("15:04:05")
				if err != nil {
					pretty.Error(stamp+" "+filepath.Base(w.Path())+" is invalid", nil)
					handler.Handle(err)
					return
				}
				docs := 0
				for _, tree := range m.Collections {
					docs += tree.Count()[nav.KindDoc]
					for _, warning := range nav.Lint(tree) {
						pretty.Warn(warning.String())
					}
				}
				pretty.Success(fmt.Sprintf("%s %s is valid (%d collections, %d docs)", stamp, filepath.Base(w.Path()), len(m.Collections), docs))
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Also validate against the manifest JSON schema")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before reloading")
	return cmd
}

