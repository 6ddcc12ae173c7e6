package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/reignite/pkg/timeutil"
)

// WindowOptions select how far back a listing reaches.
type WindowOptions struct {
	Since string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		`Only entries within this window, example: --since=1w2d. Units: s, m, h, d, w.`)
}

// GetWindow parses Since. An unset flag is zero.
func (o *WindowOptions) GetWindow() (time.Duration, error) {
	if o.Since == "" {
		return 0, nil
	}
	d, _, err := timeutil.ParseWindow(o.Since)
	return d, err
}
