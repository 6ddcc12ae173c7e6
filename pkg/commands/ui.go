package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/reignite/pkg/runner/ui"
)

type uiOptions struct {
	NoAnimation bool
}

func addUIArgs(cmd *cobra.Command, o *uiOptions) {
	cmd.Flags().BoolVar(&o.NoAnimation, "no-animation", false,
		"Skip the cursor trail, particles and breathing sphere.")
}

func addUI(topLevel *cobra.Command) {
	uo := &uiOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the full-screen journal.",
		Example: `
reignite ui
reignite ui --no-animation
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, uo)
		},
	}
	addUIArgs(cmd, uo)
	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, o *uiOptions) error {
	e, err := loadUIEnv()
	if err != nil {
		return err
	}
	defer e.close()
	u := ui.UI{
		Service:     e.svc,
		Settings:    e.settings,
		Log:         e.log,
		NoAnimation: o.NoAnimation,
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return u.Do(ctx)
}
