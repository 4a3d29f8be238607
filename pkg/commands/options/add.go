package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/streamlist/pkg/entry"
)

// AddOptions
type AddOptions struct {
	Genre string
}

func AddGenreArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Genre, "genre", "g", "",
		Wrap80("Genre of the title, free text. Common genres are offered for completion."))
	_ = cmd.RegisterFlagCompletionFunc("genre", GenreCompletions)
}

// GenreCompletions offers the common genres that start with toComplete.
func GenreCompletions(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := strings.ToLower(toComplete)
	out := make([]string, 0, len(entry.CommonGenres))
	for _, g := range entry.CommonGenres {
		if strings.HasPrefix(strings.ToLower(g), prefix) {
			out = append(out, g)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
