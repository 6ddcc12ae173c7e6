package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/crisis"
	"tableflip.dev/reignite/pkg/runner/country"
)

func addCountry(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "country",
		Aliases: []string{"crisis"},
		Short:   "Show crisis support for your country.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountry(country.Country{})
		},
	}
	base.AddOutputArg(cmd, oo)

	set := &cobra.Command{
		Use:   "set <country>",
		Short: "Choose your country.",
		Example: `
reignite country set "United Kingdom"
`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return countryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountry(country.Country{Set: strings.Join(args, " ")})
		},
	}
	base.AddOutputArg(set, oo)

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the crisis panel.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountry(country.Country{})
		},
	}
	base.AddOutputArg(show, oo)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the chosen country.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountry(country.Country{Clear: true})
		},
	}
	base.AddOutputArg(clearCmd, oo)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the selectable countries.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountry(country.Country{List: true})
		},
	}
	base.AddOutputArg(listCmd, oo)

	cmd.AddCommand(set, show, clearCmd, listCmd)
	topLevel.AddCommand(cmd)
}

func runCountry(c country.Country) error {
	e, err := loadEnv(true)
	if err != nil {
		return oo.HandleError(err)
	}
	defer e.close()
	c.Service = e.svc
	c.JSON = oo.JSON
	c.Printer = printer(false)
	err = c.Do(context.Background())
	return oo.HandleError(err)
}

func countryCompletions(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var out []string
	for _, name := range crisis.Countries() {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			out = append(out, name)
		}
	}
	return out
}
