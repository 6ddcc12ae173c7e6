package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/runner/compact"
)

func addCompact(topLevel *cobra.Command) {
	var keep int

	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Drop the oldest mood and thought entries.",
		Long: base.Wrap80("Keep only the newest entries of the mood and thought logs. " +
			"Without --keep the retention.max-entries setting is used."),
		Example: `
reignite compact --keep 365
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			if keep <= 0 {
				keep = e.settings.RetentionEntries
			}
			s := compact.Compact{
				Service:    e.svc,
				MaxEntries: keep,
				JSON:       oo.JSON,
				Printer:    printer(false),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 0, "Entries to keep in each log.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
