package commands

import (
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/reignite/pkg/store"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, path := range [][]string{
		{"ui"},
		{"breathe"},
		{"mood", "add"},
		{"mood", "list"},
		{"gratitude", "save"},
		{"gratitude", "show"},
		{"thought", "add"},
		{"thought", "list"},
		{"routine", "check"},
		{"routine", "rm"},
		{"worry", "set"},
		{"worry", "watch"},
		{"sleep"},
		{"country", "set"},
		{"country", "clear"},
		{"note"},
		{"compact"},
		{"mcp"},
		{"info"},
		{"version"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd == root {
			t.Errorf("%v: not registered (%v)", path, err)
		}
	}
}

func TestPersistentStoreFlags(t *testing.T) {
	root := New()
	for _, name := range []string{"path", "debug", "ephemeral"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing --%s", name)
		}
	}
}

func TestArgValidation(t *testing.T) {
	root := New()
	cases := []struct {
		path []string
		args []string
		ok   bool
	}{
		{[]string{"mood", "add"}, []string{"good"}, true},
		{[]string{"mood", "add"}, []string{"4", "fine"}, true},
		{[]string{"mood", "add"}, []string{"meh"}, false},
		{[]string{"mood", "add"}, nil, false},
		{[]string{"routine", "check"}, []string{"2"}, true},
		{[]string{"routine", "check"}, []string{"0"}, false},
		{[]string{"routine", "add"}, nil, false},
		{[]string{"note"}, []string{"values"}, true},
		{[]string{"note"}, []string{"shopping"}, false},
		{[]string{"gratitude", "save"}, []string{"a", "b", "c", "d"}, false},
	}
	for _, tc := range cases {
		cmd, _, err := root.Find(tc.path)
		if err != nil {
			t.Fatalf("%v: %v", tc.path, err)
		}
		err = validate(cmd, tc.args)
		if (err == nil) != tc.ok {
			t.Errorf("%v %v: err = %v, want ok=%v", tc.path, tc.args, err, tc.ok)
		}
	}
}

func validate(cmd *cobra.Command, args []string) error {
	if cmd.Args == nil {
		return nil
	}
	return cmd.Args(cmd, args)
}

func TestLogOptions(t *testing.T) {
	s := &store.Settings{LogPath: "/tmp/reignite.log", Debug: true}

	cli := logOptions(s, false)
	if cli.Path != "" {
		t.Errorf("CLI commands should log to stderr, got path %q", cli.Path)
	}
	if !cli.Debug {
		t.Error("expected debug to carry over")
	}

	tui := logOptions(s, true)
	if tui.Path != s.LogPath {
		t.Errorf("expected TUI to log to %q, got %q", s.LogPath, tui.Path)
	}
}
