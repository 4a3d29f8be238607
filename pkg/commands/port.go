package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/streamlist/pkg/commands/options"
	"tableflip.dev/streamlist/pkg/runner/port"
)

func addImport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Merge a JSON or CSV export into the watchlist",
		Long: base.Wrap80("Merge a JSON or CSV export into the watchlist. " +
			"Titles already on the list are skipped, the rest are added with new ids. " +
			"Use - to read from stdin together with --format."),
		Example: `
streamlist import backup.json
streamlist import list.csv
cat list.csv | streamlist import - --format csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := fo.Get()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := port.Import{
				Path:   args[0],
				Format: format,
				Importer: &port.Importer{
					Store: s.list,
					Lock:  s.lock(),
					Log:   s.log,
				},
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "export <file|->",
		Short: "Write the watchlist to a JSON or CSV file",
		Example: `
streamlist export backup.json
streamlist export list.csv
streamlist export - --format csv
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := fo.Get()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := port.Export{
				Path:   args[0],
				Format: format,
				Exporter: &port.Exporter{
					Store: s.list,
					Log:   s.log,
				},
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
