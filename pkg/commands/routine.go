package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/reignite/pkg/runner/routine"
)

func addRoutine(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage the nightly routine checklist.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutine(routine.Routine{Action: routine.List})
		},
	}
	base.AddOutputArg(cmd, oo)

	addRoutineAction(cmd, "list", "Show the checklist.", routine.List, 0)
	addRoutineAction(cmd, "add <item>", "Append an item.", routine.Add, -1)
	addRoutineAction(cmd, "check <n>", "Tick item n.", routine.Check, 1)
	addRoutineAction(cmd, "uncheck <n>", "Untick item n.", routine.Uncheck, 1)
	addRoutineAction(cmd, "rm <n>", "Remove item n.", routine.Remove, 1)
	topLevel.AddCommand(cmd)
}

// addRoutineAction registers one verb. nargs is 0 for none, 1 for an item
// number and -1 for free text.
func addRoutineAction(topLevel *cobra.Command, use, short string, action routine.Action, nargs int) {
	r := routine.Routine{Action: action}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			switch nargs {
			case 0:
				return cobra.NoArgs(cmd, args)
			case 1:
				if len(args) != 1 {
					return errors.New("requires an item number")
				}
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid item number %q", args[0])
				}
				r.Item = n
			default:
				if len(args) < 1 {
					return errors.New("requires the item text")
				}
				r.Text = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutine(r)
		},
	}
	if action == routine.Remove {
		cmd.Aliases = []string{"remove", "delete"}
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func runRoutine(r routine.Routine) error {
	e, err := loadEnv(true)
	if err != nil {
		return oo.HandleError(err)
	}
	defer e.close()
	r.Service = e.svc
	r.JSON = oo.JSON
	r.Printer = printer(false)
	err = r.Do(context.Background())
	return oo.HandleError(err)
}
