package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/streamlist/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the watchlist and where it is stored.",
		Example: `
streamlist info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			i := info.Info{
				Config: s.cfg,
				Store:  s.list,
			}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
