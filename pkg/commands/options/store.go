// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// StoreOptions are the global flags that locate the journal.
type StoreOptions struct {
	Path      string
	Debug     bool
	Ephemeral bool
}

// AddStoreArgs registers the persistent store flags and binds them to viper
// so .reignite.yaml and REIGNITE_* values apply when a flag is not given.
func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.Path, "path", "",
		"Directory holding the journal. Defaults to ~/.reignite.db.")
	flags.BoolVar(&o.Debug, "debug", false,
		"Write debug lines to the log file.")
	flags.BoolVar(&o.Ephemeral, "ephemeral", false,
		"Keep everything in memory and write nothing to disk.")

	_ = viper.BindPFlag("path", flags.Lookup("path"))
	_ = viper.BindPFlag("log.debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("ephemeral", flags.Lookup("ephemeral"))
}
