// Package config loads the TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/tilesight/arena"
	"github.com/lixenwraith/tilesight/fov"
	"github.com/lixenwraith/tilesight/vmath"
	"github.com/lixenwraith/tilesight/world"
)

// ErrNotPow2 reports a pool parameter that is not a power of two
var ErrNotPow2 = errors.New("not a power of two")

// ErrInvalid reports an out-of-range setting
var ErrInvalid = errors.New("invalid setting")

// Duration is a time.Duration written as a Go duration string ("50ms")
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type ArenaConfig struct {
	WorldBytes   int `toml:"world_bytes"`
	ScratchBytes int `toml:"scratch_bytes"`
}

type WorldConfig struct {
	ChunkBuckets  int `toml:"chunk_buckets"`
	PortalBuckets int `toml:"portal_buckets"`
	PortalCell    int `toml:"portal_cell"`
	MobBuckets    int `toml:"mob_buckets"`
	MobCell       int `toml:"mob_cell"`
}

type FOVConfig struct {
	ViewDistance    float64 `toml:"view_distance"`
	MobSearchRadius int     `toml:"mob_search_radius"`
	Portals         bool    `toml:"portals"`
	// Opacity is "move" (impassable tiles block sight) or "view"
	Opacity string `toml:"opacity"`
}

type DungeonConfig struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Braiding float64 `toml:"braiding"`
	Seed     int64   `toml:"seed"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

type InputConfig struct {
	PollTimeout Duration `toml:"poll_timeout"`
}

// Config is the full settings file
type Config struct {
	Arena   ArenaConfig   `toml:"arena"`
	World   WorldConfig   `toml:"world"`
	FOV     FOVConfig     `toml:"fov"`
	Dungeon DungeonConfig `toml:"dungeon"`
	Log     LogConfig     `toml:"log"`
	Input   InputConfig   `toml:"input"`
	// Keys overrides key bindings: key name → action name
	Keys map[string]string `toml:"keys"`
}

// Default returns the built-in settings
func Default() *Config {
	wo := world.DefaultOptions()
	fo := fov.DefaultOptions()
	return &Config{
		Arena: ArenaConfig{
			WorldBytes:   10 * arena.MB,
			ScratchBytes: 64 * arena.KB,
		},
		World: WorldConfig{
			ChunkBuckets:  wo.ChunkBuckets,
			PortalBuckets: wo.PortalBuckets,
			PortalCell:    wo.PortalCell,
			MobBuckets:    wo.MobBuckets,
			MobCell:       wo.MobCell,
		},
		FOV: FOVConfig{
			ViewDistance:    fo.ViewDistance,
			MobSearchRadius: fo.MobSearchRadius,
			Portals:         fo.Portals,
			Opacity:         "move",
		},
		Dungeon: DungeonConfig{
			Width:    33,
			Height:   33,
			Braiding: 0.3,
			Seed:     0,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   "tilesight.log",
		},
		Input: InputConfig{
			PollTimeout: Duration{50 * time.Millisecond},
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults; a
// file that exists but does not parse or validate is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err := cfg.check(md, err); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults
func Parse(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err := cfg.check(md, err); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) check(md toml.MetaData, err error) error {
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %s", ErrInvalid, undecoded[0])
	}
	return c.Validate()
}

// Validate checks pool sizing and budgets
func (c *Config) Validate() error {
	pow2 := []struct {
		name string
		v    int
	}{
		{"world.chunk_buckets", c.World.ChunkBuckets},
		{"world.portal_buckets", c.World.PortalBuckets},
		{"world.portal_cell", c.World.PortalCell},
		{"world.mob_buckets", c.World.MobBuckets},
		{"world.mob_cell", c.World.MobCell},
	}
	for _, p := range pow2 {
		if !vmath.IsPow2(p.v) {
			return fmt.Errorf("%s = %d: %w", p.name, p.v, ErrNotPow2)
		}
	}

	switch {
	case c.Arena.WorldBytes <= 0:
		return fmt.Errorf("arena.world_bytes = %d: %w", c.Arena.WorldBytes, ErrInvalid)
	case c.Arena.ScratchBytes <= 0:
		return fmt.Errorf("arena.scratch_bytes = %d: %w", c.Arena.ScratchBytes, ErrInvalid)
	case c.FOV.ViewDistance < 0:
		return fmt.Errorf("fov.view_distance = %g: %w", c.FOV.ViewDistance, ErrInvalid)
	case c.FOV.MobSearchRadius < 0:
		return fmt.Errorf("fov.mob_search_radius = %d: %w", c.FOV.MobSearchRadius, ErrInvalid)
	case c.FOV.Opacity != "move" && c.FOV.Opacity != "view":
		return fmt.Errorf("fov.opacity = %q: %w", c.FOV.Opacity, ErrInvalid)
	case c.Dungeon.Width < 3 || c.Dungeon.Height < 3:
		return fmt.Errorf("dungeon size %dx%d: %w", c.Dungeon.Width, c.Dungeon.Height, ErrInvalid)
	case c.Dungeon.Braiding < 0 || c.Dungeon.Braiding > 1:
		return fmt.Errorf("dungeon.braiding = %g: %w", c.Dungeon.Braiding, ErrInvalid)
	case c.Input.PollTimeout.Duration <= 0:
		return fmt.Errorf("input.poll_timeout = %s: %w", c.Input.PollTimeout, ErrInvalid)
	}
	return nil
}

// WorldOptions converts the [world] section
func (c *Config) WorldOptions() world.Options {
	return world.Options{
		ChunkBuckets:  c.World.ChunkBuckets,
		PortalBuckets: c.World.PortalBuckets,
		PortalCell:    c.World.PortalCell,
		MobBuckets:    c.World.MobBuckets,
		MobCell:       c.World.MobCell,
	}
}

// FOVOptions converts the [fov] section
func (c *Config) FOVOptions() fov.Options {
	opts := fov.DefaultOptions()
	opts.ViewDistance = c.FOV.ViewDistance
	opts.MobSearchRadius = c.FOV.MobSearchRadius
	opts.Portals = c.FOV.Portals
	if c.FOV.Opacity == "view" {
		opts.Opacity = fov.BlocksView
	}
	return opts
}
