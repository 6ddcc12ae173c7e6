package compact

import (
	"context"
	"fmt"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/printers"
)

// Compact trims the mood and thought logs to the newest MaxEntries each.
type Compact struct {
	Service    *app.Service
	MaxEntries int
	JSON       bool
	Printer    *printers.PrettyPrint
}

func (c *Compact) Do(_ context.Context) error {
	if c.MaxEntries <= 0 {
		return fmt.Errorf("compact: --keep must be greater than zero (or set retention.max-entries)")
	}
	res, err := c.Service.Compact(journal.Retention{MaxEntries: c.MaxEntries})
	if err != nil {
		return err
	}
	pp := c.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if c.JSON {
		return pp.JSON(res)
	}
	pp.Notice(fmt.Sprintf("Dropped %d mood and %d thought entries, keeping the newest %d of each.", res.Mood, res.Thoughts, c.MaxEntries))
	return nil
}
