package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/streamlist/pkg/commands/options"
	"tableflip.dev/streamlist/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show the watchlist and reprint it when it changes",
		Example: `
streamlist watch
streamlist watch --filter active
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			view, err := vo.View()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{
				View:    view,
				ShowID:  io.ShowID,
				Watcher: s.watcher(),
				Store:   s.list,
				Log:     s.log,
			}
			err = w.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
