package options

import (
	"github.com/spf13/cobra"
)

// EditOptions holds the new values for an entry. Only flags that were set
// on the command line are applied.
type EditOptions struct {
	Title string
	Genre string

	cmd *cobra.Command
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	o.cmd = cmd
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"New title.")
	cmd.Flags().StringVarP(&o.Genre, "genre", "g", "",
		Wrap80(`New genre, --genre="" clears it.`))
	_ = cmd.RegisterFlagCompletionFunc("genre", GenreCompletions)
}

// TitleChange is the new title, or nil when --title was not given.
func (o *EditOptions) TitleChange() *string {
	return o.changed("title", &o.Title)
}

// GenreChange is the new genre, or nil when --genre was not given.
func (o *EditOptions) GenreChange() *string {
	return o.changed("genre", &o.Genre)
}

func (o *EditOptions) changed(name string, v *string) *string {
	if o.cmd == nil || !o.cmd.Flags().Changed(name) {
		return nil
	}
	s := *v
	return &s
}
