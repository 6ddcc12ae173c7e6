package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/reignite/pkg/runner/breathe"
)

func addBreathe(topLevel *cobra.Command) {
	b := &breathe.Breathe{}

	cmd := &cobra.Command{
		Use:   "breathe",
		Short: "Follow the box-breathing cycle in the terminal.",
		Example: `
reignite breathe
reignite breathe --cycles 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return b.Do(ctx)
		},
	}
	cmd.Flags().IntVar(&b.Cycles, "cycles", 0, "Stop after this many cycles. Zero runs until interrupted.")
	topLevel.AddCommand(cmd)
}
