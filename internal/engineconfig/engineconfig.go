package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds engine-only preferences (debug overlays, grid, tuning preset path). Persisted across runs.
type EnginePrefs struct {
	ShowFPS     bool   `json:"show_fps"`
	ShowDebug   bool   `json:"show_debug"`
	GridVisible bool   `json:"grid_visible"`
	UpdateHz    int    `json:"update_hz,omitempty"` // fixed simulation rate
	TuningPath  string `json:"tuning_path,omitempty"`
}

// Default returns default engine preferences (debug overlays off, grid on,
// 120 Hz simulation).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:     false,
		ShowDebug:   false,
		GridVisible: true,
		UpdateHz:    120,
		TuningPath:  "config/tuning.yaml",
	}
}

// Load reads engine preferences from config/engine.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.UpdateHz <= 0 {
		p.UpdateHz = Default().UpdateHz
	}
	return p, nil
}

// Save writes engine preferences to config/engine.json, creating the config directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}
