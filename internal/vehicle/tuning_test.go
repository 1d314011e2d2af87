package vehicle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuningMissingFile(t *testing.T) {
	got := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if got != DefaultTuning() {
		t.Fatalf("missing file should yield defaults, got %+v", got)
	}
}

func TestLoadTuningInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml:::"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := LoadTuning(path); got != DefaultTuning() {
		t.Fatalf("invalid file should yield defaults, got %+v", got)
	}
}

func TestLoadTuningPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	preset := "chassis_mass: 800\nengine_torque: 1200\n"
	if err := os.WriteFile(path, []byte(preset), 0644); err != nil {
		t.Fatal(err)
	}

	got := LoadTuning(path)
	if got.ChassisMass != 800 {
		t.Fatalf("chassis_mass = %v, want 800", got.ChassisMass)
	}
	if got.EngineTorque != 1200 {
		t.Fatalf("engine_torque = %v, want 1200", got.EngineTorque)
	}
	def := DefaultTuning()
	if got.SpringK != def.SpringK || got.WheelRadius != def.WheelRadius {
		t.Fatalf("unset fields should keep defaults: %+v", got)
	}
}
