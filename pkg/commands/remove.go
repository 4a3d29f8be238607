package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/streamlist/pkg/commands/options"
	"tableflip.dev/streamlist/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <entry id>",
		Aliases: []string{"delete"},
		Short:   "Remove an entry from the watchlist",
		Example: `
streamlist rm <entry id>
`,
		Args: options.IDArg(io),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := remove.Remove{
				ID:    io.ID,
				Store: s.list,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
