package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"

	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/printers"
	"tableflip.dev/streamlist/pkg/store"
)

type Info struct {
	Config store.Config
	Store  *list.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("STREAMLIST_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "STREAMLIST_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "STREAMLIST_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if n.Store == nil {
		return fmt.Errorf("failed to open the watchlist store")
	}

	items := n.Store.Items()
	pp := printers.PrettyPrint{Out: out}
	pp.Table([]string{"Setting", "Value"},
		[]string{"path", n.Config.BasePath()},
		[]string{"backend", n.Config.Backend()},
		[]string{"key", n.Store.Key()},
		[]string{"log level", n.Config.LogLevel()},
		[]string{"titles", strconv.Itoa(len(items))},
		[]string{"to watch", strconv.Itoa(list.Remaining(items))},
	)
	return nil
}
