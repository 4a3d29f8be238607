package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/streamlist/pkg/commands/options"
	"tableflip.dev/streamlist/pkg/runner/get"
)

func addList(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "Show the watchlist",
		Example: `
streamlist list
streamlist list --filter active --sort title
streamlist list --genre horror --show-id
streamlist list --json
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

			g := get.Get{
				View:   view,
				ShowID: io.ShowID,
				JSON:   oo.JSON,
				Store:  s.list,
			}
			err = g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
