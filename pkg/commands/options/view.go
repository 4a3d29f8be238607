// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/streamlist/pkg/list"
)

// ViewOptions captures the filter and sort flags for listing entries.
type ViewOptions struct {
	Filter  string
	Genre   string
	Sort    string
	Reverse bool
}

// AddViewArgs wires view-related flags on the provided command.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	filters := make([]string, 0, 3)
	for _, f := range list.AllFilters() {
		filters = append(filters, string(f))
	}
	keys := make([]string, 0, 5)
	for _, k := range list.AllSortKeys() {
		keys = append(keys, string(k))
	}

	cmd.Flags().StringVarP(&o.Filter, "filter", "f", string(list.FilterAll),
		fmt.Sprintf("Which entries to show, one of %s.", strings.Join(filters, "|")))
	cmd.Flags().StringVarP(&o.Genre, "genre", "g", "",
		"Only show entries of this genre.")
	cmd.Flags().StringVarP(&o.Sort, "sort", "s", string(list.SortAdded),
		fmt.Sprintf("Sort order, one of %s.", strings.Join(keys, "|")))
	cmd.Flags().BoolVarP(&o.Reverse, "reverse", "r", false,
		"Reverse the sort order.")

	_ = cmd.RegisterFlagCompletionFunc("filter", fixed(filters))
	_ = cmd.RegisterFlagCompletionFunc("sort", fixed(keys))
	_ = cmd.RegisterFlagCompletionFunc("genre", GenreCompletions)
}

// View converts the flags to a list.View.
func (o *ViewOptions) View() (list.View, error) {
	f, err := list.ParseFilter(o.Filter)
	if err != nil {
		return list.View{}, err
	}
	k, err := list.ParseSortKey(o.Sort)
	if err != nil {
		return list.View{}, err
	}
	return list.View{Filter: f, Genre: o.Genre, Sort: k, Reverse: o.Reverse}, nil
}

func fixed(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
