package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry.")
}

// IDArg is a cobra Args validator that takes the entry id from the first
// argument.
func IDArg(o *IDOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
			return errors.New("requires an entry id")
		}
		o.ID = strings.TrimSpace(args[0])
		return nil
	}
}
