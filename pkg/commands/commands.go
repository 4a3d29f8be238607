package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "streamlist",
		Short: base.Wrap80("Keep a watchlist of movies and shows on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addToggle(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addClear(topLevel)
	addList(topLevel)
	addImport(topLevel)
	addExport(topLevel)
	addGenres(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
