package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	so = &options.StoreOptions{}
)

func New() *cobra.Command {
	uo := &uiOptions{}

	cmd := &cobra.Command{
		Use:   "reignite",
		Short: base.Wrap80("A calm journal for the terminal: breathe, check in with your mood and park your worries."),
		Long: base.Wrap80("reignite keeps a private wellness journal on this device. " +
			"Run it without a subcommand to open the full-screen journal, or use the " +
			"subcommands to read and write entries from scripts."),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, uo)
		},
	}
	options.AddStoreArgs(cmd, so)
	addUIArgs(cmd, uo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addBreathe(topLevel)
	addMood(topLevel)
	addGratitude(topLevel)
	addThought(topLevel)
	addRoutine(topLevel)
	addWorry(topLevel)
	addSleep(topLevel)
	addCountry(topLevel)
	addNote(topLevel)
	addCompact(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
