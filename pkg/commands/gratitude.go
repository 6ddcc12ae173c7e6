package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/runner/gratitude"
)

func addGratitude(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "gratitude",
		Short: "Write down up to three good things.",
	}
	addGratitudeSave(cmd)
	addGratitudeShow(cmd)
	topLevel.AddCommand(cmd)
}

func addGratitudeSave(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "save <entry> [entry] [entry]",
		Short: "Replace the gratitude snapshot.",
		Example: `
reignite gratitude save "morning coffee" "a call with mum" "the sun came out"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 3 {
				return errors.New("at most three entries")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := gratitude.Save{
				Service: e.svc,
				Entries: args,
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

func addGratitudeShow(topLevel *cobra.Command) {
	var prompt bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the last gratitude snapshot.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := gratitude.Show{
				Service: e.svc,
				Prompt:  prompt,
				JSON:    oo.JSON,
				Printer: printer(false),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&prompt, "prompt", false, "Also print a writing prompt.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
