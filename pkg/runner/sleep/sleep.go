package sleep

import (
	"context"

	"tableflip.dev/reignite/pkg/app"
	"tableflip.dev/reignite/pkg/printers"
)

// Sleep prints suggested bedtimes for a wake-up time.
type Sleep struct {
	Service *app.Service
	Wake    string
	JSON    bool
	Printer *printers.PrettyPrint
}

func (s *Sleep) Do(_ context.Context) error {
	times, err := s.Service.Bedtimes(s.Wake)
	if err != nil {
		return err
	}
	pp := s.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if s.JSON {
		return pp.JSON(map[string]interface{}{"wake": s.Wake, "bedtimes": times})
	}
	pp.Bedtimes(s.Wake, times)
	return nil
}
