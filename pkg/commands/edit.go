package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/streamlist/pkg/commands/options"
	"tableflip.dev/streamlist/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit <entry id>",
		Short: "Change the title or genre of an entry",
		Example: `
streamlist edit 3 --title "Dune: Part Two"
streamlist edit 3 --genre ""
`,
		Args: options.IDArg(io),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			e := edit.Edit{
				ID:    io.ID,
				Title: eo.TitleChange(),
				Genre: eo.GenreChange(),
				Store: s.list,
			}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEditArgs(cmd, eo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
