package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/commands/options"
	"tableflip.dev/reignite/pkg/journal"
	"tableflip.dev/reignite/pkg/runner/mood"
)

func addMood(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Record and review mood check-ins.",
	}
	addMoodAdd(cmd)
	addMoodList(cmd)
	topLevel.AddCommand(cmd)
}

func addMoodAdd(topLevel *cobra.Command) {
	var score int

	cmd := &cobra.Command{
		Use:   "add <mood> [note]",
		Short: "Save a mood check-in.",
		Long: base.Wrap80("Save a mood check-in. The mood is a score from 1 (struggling) to 5 (great) or one of: " +
			strings.Join(journal.MoodNames(), ", ") + "."),
		Example: `
reignite mood add good
reignite mood add 2 "slept badly, long day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a mood")
			}
			var ok bool
			if score, ok = journal.ScoreFor(args[0]); !ok {
				return fmt.Errorf("unknown mood %q", args[0])
			}
			return nil
		},
		ValidArgs: journal.MoodNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := mood.Add{
				Service: e.svc,
				Score:   score,
				Note:    strings.Join(args[1:], " "),
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

func addMoodList(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var calendar bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "history"},
		Short:   "Show recent mood check-ins.",
		Example: `
reignite mood list
reignite mood list --since 1w
reignite mood list --calendar
`,
		Args: cobra.NoArgs,
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
			s := mood.List{
				Service:  e.svc,
				Window:   window,
				Calendar: calendar,
				JSON:     oo.JSON,
				Printer:  printer(false),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	cmd.Flags().BoolVar(&calendar, "calendar", false,
		"Show this month as a calendar colored by average mood.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
