package routine

import (
	"context"
	"fmt"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/printers"
)

// Action is what Routine does before printing the list.
type Action int

const (
	List Action = iota
	Add
	Check
	Uncheck
	Remove
)

// Routine edits and prints the nightly checklist. Item is one based, as
// printed.
type Routine struct {
	Service *app.Service
	Action  Action
	Text    string
	Item    int
	JSON    bool
	Printer *printers.PrettyPrint
}

func (r *Routine) Do(_ context.Context) error {
	var (
		items []journal.RoutineItem
		err   error
	)
	switch r.Action {
	case List:
		items = r.Service.Routine()
	case Add:
		items, err = r.Service.AddRoutineItem(r.Text)
	case Check, Uncheck:
		items, err = r.Service.ToggleRoutineItem(r.Item-1, r.Action == Check)
	case Remove:
		items, err = r.Service.DeleteRoutineItem(r.Item - 1)
	default:
		return fmt.Errorf("routine: unknown action %d", r.Action)
	}
	if err != nil {
		return err
	}

	pp := r.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if r.JSON {
		return pp.JSON(items)
	}
	pp.Routine(items...)
	return nil
}
