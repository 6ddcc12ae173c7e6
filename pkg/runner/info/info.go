package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/reignite/pkg/anim"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/printers"
	"tableflip.dev/reignite/pkg/store"
)

// Info describes where reignite keeps its data and what it found there.
type Info struct {
	Settings    *store.Settings
	Persistence store.Persistence
	JSON        bool
	Printer     *printers.PrettyPrint
}

type report struct {
	ConfigPath   string            `json:"configPath,omitempty"`
	Path         string            `json:"path"`
	LogPath      string            `json:"logPath"`
	Ephemeral    bool              `json:"ephemeral"`
	Keys         []string          `json:"keys"`
	Capabilities anim.Capabilities `json:"capabilities"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return fmt.Errorf("info: no persistence configured")
	}

	r := report{
		ConfigPath:   os.Getenv("REIGNITE_CONFIG_PATH"),
		Path:         n.Settings.Path,
		LogPath:      n.Settings.LogPath,
		Ephemeral:    n.Settings.Ephemeral,
		Keys:         n.Persistence.Keys(ctx),
		Capabilities: anim.Detect(os.Stdout),
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if n.JSON {
		return pp.JSON(r)
	}

	known := make(map[string]bool)
	for _, k := range journal.Names() {
		known[k] = true
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if r.ConfigPath != "" {
		tbl.AddRow("REIGNITE_CONFIG_PATH", r.ConfigPath)
	}
	tbl.AddRow("path", r.Path)
	tbl.AddRow("log.path", r.LogPath)
	tbl.AddRow("ephemeral", r.Ephemeral)
	tbl.AddRow("tty", r.Capabilities.TTY)
	tbl.AddRow("color", r.Capabilities.Color)
	_, _ = fmt.Fprintln(pp.Writer(), tbl)
	pp.NewLine()

	pp.TitleWithCount("Stored documents", len(r.Keys))
	faint := color.New(color.Faint)
	for _, k := range r.Keys {
		if known[k] {
			_, _ = fmt.Fprintf(pp.Writer(), "  %s\n", k)
		} else {
			_, _ = faint.Fprintf(pp.Writer(), "  %s (unknown)\n", k)
		}
	}
	return nil
}
