package port

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/logging"
	"tableflip.dev/streamlist/pkg/transfer"
)

// Exporter writes the current list to a file or to Out.
type Exporter struct {
	Store *list.Store
	Log   *zap.Logger
	// Out receives the export for the Stdin path. Defaults to os.Stdout.
	Out io.Writer
}

// Export writes every entry to path in format, which is picked from the
// extension when empty. It returns the number of entries written.
func (ex *Exporter) Export(ctx context.Context, path string, format transfer.Format) (int, error) {
	if ex.Store == nil {
		return 0, errors.New("can not export, no store")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if format == "" {
		if path == Stdin {
			format = transfer.FormatJSON
		} else {
			f, err := transfer.FormatFromPath(path)
			if err != nil {
				return 0, fmt.Errorf("export: %w", err)
			}
			format = f
		}
	}

	items := ex.Store.Items()
	data, err := transfer.Encode(format, items)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}

	if path == Stdin {
		out := ex.Out
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(data); err != nil {
			return 0, fmt.Errorf("export: write: %w", err)
		}
	} else if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("export: write %s: %w", path, err)
	}

	logging.Component(ex.Log, "export").Info("export finished",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("items", len(items)))
	return len(items), nil
}
