package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/streamlist/pkg/commands/options"
	"tableflip.dev/streamlist/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "toggle <entry id>",
		Aliases: []string{"done", "complete"},
		Short:   "Mark a title watched, or unwatched again",
		Example: `
streamlist toggle 3
streamlist done 3
`,
		Args: options.IDArg(io),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			t := toggle.Toggle{
				ID:    io.ID,
				Store: s.list,
			}
			err = t.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
