package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/streamlist/pkg/commands/options"
	"tableflip.dev/streamlist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a title to the watchlist",
		Example: `
streamlist add Dune --genre Sci-Fi
streamlist add "The Good, the Bad and the Ugly" -g Western
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				Title:  strings.Join(args, " "),
				Genre:  ao.Genre,
				ShowID: io.ShowID,
				Store:  s.list,
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddGenreArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
