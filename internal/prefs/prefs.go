// Package prefs persists builder preferences (overlays, window, camera). The brick scene itself is
// never saved.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

// Path is the preferences file, relative to the process working directory.
const Path = "config/builder.json"

// Prefs holds builder-only preferences. Persisted across runs.
type Prefs struct {
	ShowFPS      bool       `json:"show_fps"`
	ShowMemAlloc bool       `json:"show_memalloc"`
	GridVisible  bool       `json:"grid_visible"`
	Fullscreen   bool       `json:"fullscreen"`
	WindowWidth  int        `json:"window_width"`
	WindowHeight int        `json:"window_height"`
	Camera       [3]float32 `json:"camera"`
	LogLevel     string     `json:"log_level,omitempty"`
	// Font names a file under assets/fonts (fuzzy matched) or a path. Empty uses raylib's font.
	Font string `json:"font,omitempty"`
}

// Default returns default preferences: overlays off, grid on, a 1280×720 window and the camera at
// (150, 200, 150).
func Default() Prefs {
	return Prefs{
		GridVisible:  true,
		WindowWidth:  1280,
		WindowHeight: 720,
		Camera:       [3]float32{150, 200, 150},
		LogLevel:     "info",
	}
}

// CameraPosition returns Camera as a vector.
func (p Prefs) CameraPosition() mgl32.Vec3 {
	return mgl32.Vec3(p.Camera)
}

// Load reads Path. A missing file yields Default() and no error. An invalid file yields Default()
// and the parse error so the caller can log it; the file is not touched.
func Load() (Prefs, error) {
	return LoadFrom(Path)
}

// LoadFrom is Load for an explicit path. Fields absent from the file keep their defaults.
func LoadFrom(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		d := Default()
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	return p, nil
}

// Save writes p to Path, creating the config directory if needed.
func Save(p Prefs) error {
	return SaveTo(Path, p)
}

// SaveTo is Save for an explicit path.
func SaveTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
