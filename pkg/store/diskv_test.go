package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiskvReadMissingKey(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := p.Read("moodData"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskvWriteOverwritesWholeDocument(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Write("routineData", []byte(`[{"text":"a","checked":false},{"text":"b","checked":true}]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := p.Write("routineData", []byte(`[]`)); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	got, err := p.Read("routineData")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected overwritten document, got %s", got)
	}

	// A second instance over the same directory sees the durable copy.
	p2, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got, err = p2.Read("routineData")
	if err != nil {
		t.Fatalf("read from second instance: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("expected durable copy, got %s", got)
	}
	if _, err := os.Stat(filepath.Join(base, "routineData")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
}

func TestDiskvSeesWritesFromAnotherInstance(t *testing.T) {
	base := t.TempDir()
	a, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load a: %v", err)
	}
	b, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load b: %v", err)
	}

	if err := a.Write("worryTime", []byte(`"09:00"`)); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if got, err := a.Read("worryTime"); err != nil || string(got) != `"09:00"` {
		t.Fatalf("expected a to read its own write, got %s (%v)", got, err)
	}
	if err := b.Write("worryTime", []byte(`"21:00"`)); err != nil {
		t.Fatalf("write b: %v", err)
	}
	got, err := a.Read("worryTime")
	if err != nil {
		t.Fatalf("read a: %v", err)
	}
	if string(got) != `"21:00"` {
		t.Fatalf("expected a to see b's write, got %s", got)
	}
}

func TestDiskvKeysAndErase(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, k := range []string{"worryTime", "cbtLog", "moodData"} {
		if err := p.Write(k, []byte(`""`)); err != nil {
			t.Fatalf("write %s: %v", k, err)
		}
	}
	keys := p.Keys(context.Background())
	want := []string{"cbtLog", "moodData", "worryTime"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, keys)
		}
	}
	if err := p.Erase("cbtLog"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase("cbtLog"); err != nil {
		t.Fatalf("erase twice should be quiet: %v", err)
	}
	if _, err := p.Read("cbtLog"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after erase, got %v", err)
	}
}

func TestInvalidKeyRejected(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Write("../escape", []byte(`1`)); err == nil {
		t.Fatalf("expected error for path-like key")
	}
}

func TestDisabledRefusesWrites(t *testing.T) {
	p := Disabled()
	if err := p.Write("moodData", []byte(`[]`)); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if _, err := p.Read("moodData"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEphemeralSettingsUseMemory(t *testing.T) {
	p, err := Load(&Settings{Path: t.TempDir(), Ephemeral: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := p.(*memory); !ok {
		t.Fatalf("expected memory persistence, got %T", p)
	}
}
