package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/streamlist/pkg/transfer"
)

// FormatOptions
type FormatOptions struct {
	Format string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVar(&o.Format, "format", "",
		Wrap80("File format, json or csv. Defaults to the file extension."))
	_ = cmd.RegisterFlagCompletionFunc("format", fixed([]string{string(transfer.FormatJSON), string(transfer.FormatCSV)}))
}

// Get returns the chosen format, empty when the flag was not set.
func (o *FormatOptions) Get() (transfer.Format, error) {
	if o.Format == "" {
		return "", nil
	}
	return transfer.ParseFormat(o.Format)
}
