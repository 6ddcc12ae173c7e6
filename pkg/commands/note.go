package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	var field journal.NoteField

	names := make([]string, 0, len(journal.NoteFields()))
	for _, f := range journal.NoteFields() {
		names = append(names, string(f))
	}

	cmd := &cobra.Command{
		Use:   "note <field> [text]",
		Short: "Read or replace a free-text note.",
		Long: base.Wrap80("Read or replace one of the free-text notes: " + strings.Join(names, ", ") +
			". With text the note is replaced; an empty string clears it."),
		Example: `
reignite note values
reignite note values "family, honesty, being outdoors"
`,
		ValidArgs: names,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a note field")
			}
			var ok bool
			if field, ok = journal.ParseNoteField(args[0]); !ok {
				return fmt.Errorf("unknown note %q, want one of %s", args[0], strings.Join(names, ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := note.Note{
				Service: e.svc,
				Field:   field,
				JSON:    oo.JSON,
				Printer: printer(false),
			}
			if len(args) > 1 {
				text := strings.Join(args[1:], " ")
				s.Text = &text
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
