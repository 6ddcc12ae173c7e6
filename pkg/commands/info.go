package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where the journal lives and what it holds.",
		Example: `
reignite info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := info.Info{
				Settings:    e.settings,
				Persistence: e.p,
				JSON:        oo.JSON,
				Printer:     printer(false),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
