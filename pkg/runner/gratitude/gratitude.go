package gratitude

import (
	"context"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/printers"
)

// Save replaces the gratitude snapshot with up to three entries.
type Save struct {
	Service *app.Service
	Entries []string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (s *Save) Do(_ context.Context) error {
	var e [3]string
	copy(e[:], s.Entries)
	g, err := s.Service.SaveGratitude(e[0], e[1], e[2])
	if err != nil {
		return err
	}
	pp := s.printer()
	if s.JSON {
		return pp.JSON(g)
	}
	pp.Notice(app.GratitudeSaved)
	return nil
}

func (s *Save) printer() *printers.PrettyPrint {
	if s.Printer == nil {
		return &printers.PrettyPrint{}
	}
	return s.Printer
}

// Show prints the last snapshot, or a prompt to write one.
type Show struct {
	Service *app.Service
	Prompt  bool
	JSON    bool
	Printer *printers.PrettyPrint
}

func (s *Show) Do(_ context.Context) error {
	pp := s.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if s.Prompt {
		p := s.Service.GratitudePrompt(nil)
		if s.JSON {
			return pp.JSON(map[string]string{"prompt": p})
		}
		pp.Notice(`"` + p + `"`)
		return nil
	}
	g := s.Service.LastGratitude()
	if s.JSON {
		return pp.JSON(g)
	}
	pp.Gratitude(g)
	return nil
}
