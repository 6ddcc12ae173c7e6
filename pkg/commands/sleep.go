package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/runner/sleep"
)

func addSleep(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sleep <wake HH:MM>",
		Short: "Suggest bedtimes that end on a full sleep cycle.",
		Example: `
reignite sleep 07:00
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wake := ""
			if len(args) == 1 {
				wake = args[0]
			}
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := sleep.Sleep{
				Service: e.svc,
				Wake:    wake,
				JSON:    oo.JSON,
				Printer: printer(false),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
