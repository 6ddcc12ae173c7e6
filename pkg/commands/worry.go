package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/runner/worry"
)

func addWorry(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "worry",
		Short: "Set and wait for the daily worry time.",
		Long: base.Wrap80("Worry time is a daily window for the worries that show up earlier. " +
			"When the clock reaches it, reignite shows a reminder once that day."),
	}
	addWorrySet(cmd)
	addWorryShow(cmd)
	addWorryWatch(cmd)
	topLevel.AddCommand(cmd)
}

func addWorrySet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <HH:MM>",
		Short: "Store the daily worry time.",
		Example: `
reignite worry set 18:30
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a time such as 18:30")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := worry.Set{
				Service: e.svc,
				At:      args[0],
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

func addWorryShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored worry time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(true)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()
			s := worry.Show{
				Service: e.svc,
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

func addWorryWatch(topLevel *cobra.Command) {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Wait in the foreground and print the reminder when worry time comes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			defer e.close()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			s := worry.Watch{
				Service:  e.svc,
				Interval: interval,
				Printer:  printer(false),
			}
			return s.Do(ctx)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "How often to compare the clock.")
	topLevel.AddCommand(cmd)
}
