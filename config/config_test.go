package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/fov"
	"github.com/lixenwraith/tilesight/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10*arena.MB, cfg.Arena.WorldBytes)
	assert.Equal(t, 12.5, cfg.FOV.ViewDistance)
	assert.Equal(t, 50*time.Millisecond, cfg.Input.PollTimeout.Duration)
	assert.Equal(t, world.DefaultOptions(), cfg.WorldOptions())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(`
[arena]
scratch_bytes = 131072

[world]
mob_buckets = 64
mob_cell = 8

[fov]
view_distance = 8.5
opacity = "view"

[input]
poll_timeout = "120ms"

[keys]
k = "north"
up = "none"
`)
	require.NoError(t, err)

	assert.Equal(t, 131072, cfg.Arena.ScratchBytes)
	assert.Equal(t, 10*arena.MB, cfg.Arena.WorldBytes, "unset keys keep defaults")
	assert.Equal(t, 64, cfg.World.MobBuckets)
	assert.Equal(t, 120*time.Millisecond, cfg.Input.PollTimeout.Duration)
	assert.Equal(t, map[string]string{"k": "north", "up": "none"}, cfg.Keys)

	opts := cfg.FOVOptions()
	assert.Equal(t, 8.5, opts.ViewDistance)
	assert.True(t, opts.Portals)
	glass := world.Terra{BlocksView: true}
	assert.True(t, opts.Opacity(glass))
	assert.False(t, fov.DefaultOptions().Opacity(glass))
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"non pow2 buckets", "[world]\nchunk_buckets = 6", ErrNotPow2},
		{"non pow2 cell", "[world]\nmob_cell = 0", ErrNotPow2},
		{"negative view", "[fov]\nview_distance = -1.0", ErrInvalid},
		{"bad opacity", "[fov]\nopacity = \"glass\"", ErrInvalid},
		{"braiding range", "[dungeon]\nbraiding = 1.5", ErrInvalid},
		{"unknown key", "[fov]\nradius = 3", ErrInvalid},
		{"zero arena", "[arena]\nworld_bytes = 0", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse("[input]\npoll_timeout = \"soon\"")
	assert.Error(t, err)
	_, err = Parse("not toml [")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("[dungeon]\nseed = 42\nwidth = 21\n"), 0o644))
	cfg, err = Load(good)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Dungeon.Seed)
	assert.Equal(t, 21, cfg.Dungeon.Width)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[world]\nportal_cell = 3\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrNotPow2)
	assert.Contains(t, err.Error(), "bad.toml")
}
