package country

import (
	"context"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/crisis"
	"tableflip.dev/reignite/pkg/printers"
)

// Country sets, clears or shows the country behind the crisis panel.
type Country struct {
	Service *app.Service
	// Set, when non-empty, stores a new country first.
	Set   string
	Clear bool
	// List prints the selectable countries instead of the panel.
	List    bool
	JSON    bool
	Printer *printers.PrettyPrint
}

func (c *Country) Do(_ context.Context) error {
	pp := c.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if c.List {
		names := crisis.Countries()
		if c.JSON {
			return pp.JSON(names)
		}
		for _, n := range names {
			if _, ok := crisis.Lookup(n); ok {
				pp.Notice(n + " *")
				continue
			}
			pp.Notice(n)
		}
		return nil
	}

	var panel crisis.Panel
	switch {
	case c.Clear:
		if err := c.Service.ClearCountry(); err != nil {
			return err
		}
		panel = c.Service.Crisis()
	case c.Set != "":
		p, err := c.Service.SetCountry(c.Set)
		if err != nil {
			return err
		}
		panel = p
	default:
		panel = c.Service.Crisis()
	}
	if c.JSON {
		return pp.JSON(panel)
	}
	pp.Crisis(panel)
	return nil
}
