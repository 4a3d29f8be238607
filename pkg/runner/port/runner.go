package port

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/streamlist/pkg/printers"
	"tableflip.dev/streamlist/pkg/transfer"
)

// Import is the CLI runner around Importer.
type Import struct {
	Path     string
	Format   transfer.Format
	Importer *Importer
	Out      io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	res, err := n.Importer.Import(ctx, n.Path, n.Format)
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.Faint).Fprintf(out, "imported %d, skipped %d\n", res.Added, res.Skipped)

	pp := printers.PrettyPrint{ShowID: true, Out: out}
	pp.Watchlist(res.Items)
	return nil
}

// Export is the CLI runner around Exporter.
type Export struct {
	Path     string
	Format   transfer.Format
	Exporter *Exporter
	// Out receives the status line. It is not used when exporting to stdout.
	Out io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	count, err := n.Exporter.Export(ctx, n.Path, n.Format)
	if err != nil {
		return err
	}
	if n.Path == Stdin {
		return nil
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.Faint).Fprintf(out, "exported %d to %s\n", count, n.Path)
	return nil
}
