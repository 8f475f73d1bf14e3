package app

import (
	"path/filepath"
	"strings"
	"testing"

	"conway-3d/internal/sims/life3d"
)

var _ Sim = (*life3d.World)(nil)

func TestScaleSpeedClamps(t *testing.T) {
	w := life3d.New(4)
	w.SetSpeed(40)
	ScaleSpeed(w, 2)
	if w.Speed() != MaxSpeed {
		t.Fatalf("speed = %v, want %v", w.Speed(), float64(MaxSpeed))
	}
	w.SetSpeed(0.3)
	ScaleSpeed(w, 0.5)
	if w.Speed() != MinSpeed {
		t.Fatalf("speed = %v, want %v", w.Speed(), MinSpeed)
	}
	w.SetSpeed(2)
	ScaleSpeed(w, 2)
	if w.Speed() != 4 {
		t.Fatalf("speed = %v, want 4", w.Speed())
	}
}

func TestSaveSnapshot(t *testing.T) {
	w := life3d.New(5)
	w.Reset(0)
	path := filepath.Join(t.TempDir(), "snap.yaml")

	if got := SaveSnapshot(w, path); !strings.HasPrefix(got, "saved generation 0") {
		t.Fatalf("unexpected notice %q", got)
	}
	if _, err := life3d.LoadConfig(path); err != nil {
		t.Fatalf("saved snapshot does not load: %v", err)
	}
	if got := SaveSnapshot(w, ""); got != "no snapshot path set" {
		t.Fatalf("unexpected notice %q", got)
	}
	if got := SaveSnapshot(w, filepath.Join(t.TempDir(), "nope", "x.yaml")); !strings.HasPrefix(got, "save failed") {
		t.Fatalf("unexpected notice %q", got)
	}
}
