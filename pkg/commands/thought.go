package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/commands/options"
	"tableflip.dev/reignite/pkg/runner/thought"
)

func addThought(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "thought",
		Aliases: []string{"thoughts", "diary"},
		Short:   "Keep a thought diary.",
	}
	addThoughtAdd(cmd)
	addThoughtList(cmd)
	topLevel.AddCommand(cmd)
}

func addThoughtAdd(topLevel *cobra.Command) {
	var situation, automatic, balance string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a situation, the automatic thought and a balanced one.",
		Example: `
reignite thought add --situation "meeting ran late" --thought "they think I'm useless" --balance "it was one meeting"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := thought.Add{
				Service:   e.svc,
				Situation: situation,
				Thought:   automatic,
				Balance:   balance,
				JSON:      oo.JSON,
				Printer:   printer(false),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&situation, "situation", "", "What happened.")
	cmd.Flags().StringVar(&automatic, "thought", "", "The automatic thought.")
	cmd.Flags().StringVar(&balance, "balance", "", "A balanced alternative (optional).")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addThoughtList(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show thought diary entries.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := wo.GetWindow()
			if err != nil {
				return err
			}
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := thought.List{
				Service: e.svc,
				Window:  window,
				ShowID:  ido.ShowID,
				JSON:    oo.JSON,
				Printer: printer(ido.ShowID),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, ido)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
