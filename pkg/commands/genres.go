package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/streamlist/pkg/runner/genres"
)

func addGenres(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "genres",
		Short: "Show the genres in use and how many titles each has",
		Example: `
streamlist genres
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			g := genres.Genres{Store: s.list}
			err = g.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
