package note

import (
	"context"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/printers"
)

// Note reads or replaces a free-text field. With no Field every field is
// printed.
type Note struct {
	Service *app.Service
	Field   journal.NoteField
	Text    *string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (n *Note) Do(_ context.Context) error {
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if n.Text != nil {
		if err := n.Service.SetNote(n.Field, *n.Text); err != nil {
			return err
		}
	}

	fields := journal.NoteFields()
	if n.Field != "" {
		fields = []journal.NoteField{n.Field}
	}
	if n.JSON {
		out := make(map[string]string, len(fields))
		for _, f := range fields {
			out[string(f)] = n.Service.Note(f)
		}
		return pp.JSON(out)
	}
	for _, f := range fields {
		pp.Note(f, n.Service.Note(f))
	}
	return nil
}
