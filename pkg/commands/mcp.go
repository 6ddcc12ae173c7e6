package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/reignite/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal to a local assistant over MCP on stdio.",
		Long: `Launch a Model Context Protocol server on stdin/stdout that exposes mood,
gratitude, thought diary, routine, worry time and crisis resources as MCP
resources and tools. Nothing is sent over the network.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(false)
			if err != nil {
				return err
			}
			defer e.close()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			r := mcp.Runner{
				Service: e.svc,
				Name:    "reignite",
				Version: version,
			}
			return r.Do(ctx)
		},
	}
	topLevel.AddCommand(cmd)
}
