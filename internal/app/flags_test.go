package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"conway-3d/internal/sims/life3d"
)

func TestSimDefaultsWithoutFlags(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	got, err := c.Sim()
	if err != nil {
		t.Fatalf("Sim: %v", err)
	}
	def := life3d.DefaultConfig()
	if got.GridSize != def.GridSize || got.Speed != def.Speed || got.Seed != def.Seed || got.Running != def.Running {
		t.Fatalf("unexpected config %+v", got)
	}
}

func TestSimFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("grid_size: 7\nspeed: 3\nseed: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-speed", "6", "-paused"}); err != nil {
		t.Fatal(err)
	}
	got, err := c.Sim()
	if err != nil {
		t.Fatalf("Sim: %v", err)
	}
	if got.GridSize != 7 || got.Seed != 11 {
		t.Fatalf("file values lost: %+v", got)
	}
	if got.Speed != 6 || got.Running {
		t.Fatalf("flag overrides not applied: %+v", got)
	}
}

func TestSimMissingFile(t *testing.T) {
	c := NewConfig()
	c.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := c.Sim(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
