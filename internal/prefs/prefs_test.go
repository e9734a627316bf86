package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	assert.Equal(t, mgl32.Vec3{150, 200, 150}, p.CameraPosition())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "builder.json")
	want := Default()
	want.ShowFPS = true
	want.GridVisible = false
	want.Camera = [3]float32{10, 20, 30}

	require.NoError(t, SaveTo(path, want))
	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builder.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true, "window_width": 0}`), 0644))

	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.True(t, p.GridVisible)
	assert.Equal(t, 1280, p.WindowWidth)
	assert.Equal(t, 720, p.WindowHeight)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builder.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	p, err := LoadFrom(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}
