// Package config holds the settings a generation run is driven by. The
// struct is passed explicitly through the generation call chain; nothing in
// the engine reads global state.
package config

import (
	"reflect"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"isgt/pkg/engine/seed"
)

// ErrTypeConfiguration is the error type of every validation failure.
const ErrTypeConfiguration = seed.ErrTypeConfiguration

// MinDimension is the smallest allowed grid width or height.
const MinDimension = 2

// Disables obfuscation of the struct so that the cli package can derive
// option names from it.
var _ = reflect.TypeOf(Config{})

type Config struct {
	RoomCount   int `cli:"" env:"ISGT_ROOM_COUNT"  help:"Number of rooms to generate."`
	Concurrency int `cli:"" env:"ISGT_CONCURRENCY" help:"Maximum number of rooms generated at once."`

	Width     int `cli:"" env:"ISGT_WIDTH"      help:"Grid width in cells, 0 picks a random width."`
	Height    int `cli:"" env:"ISGT_HEIGHT"     help:"Grid height in cells, 0 picks a random height."`
	MaxWidth  int `cli:"" env:"ISGT_MAX_WIDTH"  help:"Upper bound of a random grid width."`
	MaxHeight int `cli:"" env:"ISGT_MAX_HEIGHT" help:"Upper bound of a random grid height."`

	Pitch         float64 `cli:""        env:"ISGT_PITCH"          help:"Size of a grid cell in world units."`
	WallHeight    float64 `cli:",hidden" env:"ISGT_WALL_HEIGHT"    help:"Height of the walls."`
	WallThickness float64 `cli:",hidden" env:"ISGT_WALL_THICKNESS" help:"Thickness of the walls."`

	DoorRatio         float64 `cli:"" env:"ISGT_DOOR_RATIO"          help:"Doors per wall section cell (0-1)."`
	WindowRatio       float64 `cli:"" env:"ISGT_WINDOW_RATIO"        help:"Windows per wall section cell (0-1)."`
	MinOpeningSpacing int     `cli:"" env:"ISGT_MIN_OPENING_SPACING" help:"Minimum distance in cells between openings of a wall section, 0 disables the check."`

	PropDensity          float64  `cli:""        env:"ISGT_PROP_DENSITY"           help:"Prop density ratio (0-100)."`
	MaxPlacementAttempts int      `cli:",hidden" env:"ISGT_MAX_PLACEMENT_ATTEMPTS" help:"Positions tried per prop before it is discarded."`
	WallSnapDistance     float64  `cli:",hidden" env:"ISGT_WALL_SNAP_DISTANCE"     help:"Distance within which wall-aligned props face the nearest wall."`
	CatalogPath          string   `cli:""        env:"ISGT_CATALOG"                help:"JSON prefab catalog, empty uses the built-in catalog."`
	Categories           []string `cli:""        env:"ISGT_CATEGORIES"             help:"Comma separated prop categories the catalog is restricted to, empty keeps every category."`

	Seed          int64 `cli:""        env:"ISGT_SEED"           help:"Seed of the seed sequence, 0 uses the current time."`
	SeedTopology  int64 `cli:",hidden" env:"ISGT_SEED_TOPOLOGY"  help:"Topology seed of the first room, 0 draws a fresh one."`
	SeedOpenings  int64 `cli:",hidden" env:"ISGT_SEED_OPENINGS"  help:"Openings seed of the first room, 0 draws a fresh one."`
	SeedProps     int64 `cli:",hidden" env:"ISGT_SEED_PROPS"     help:"Props seed of the first room, 0 draws a fresh one."`
	SeedAuxiliary int64 `cli:",hidden" env:"ISGT_SEED_AUXILIARY" help:"Auxiliary seed of the first room, 0 draws a fresh one."`

	OutputDir   string `cli:""        env:"ISGT_OUTPUT_DIR"   help:"Directory where room handoff files are written, empty disables writing."`
	MetricsAddr string `cli:",hidden" env:"ISGT_METRICS_ADDR" help:"Address serving prometheus metrics, empty disables it."`
	Preview     bool   `cli:""        env:"ISGT_PREVIEW"      help:"Print a coloured preview of each room."`
	Dump        bool   `cli:""        env:"ISGT_DUMP"         help:"Write a text dump of each room next to its handoff file."`
	LogLevel    string `cli:""        env:"ISGT_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	LogIndent   bool   `cli:""        env:"ISGT_LOG_INDENT"   help:"Indent logs."`
	Help        bool   `cli:""        env:"-"                 help:"Show help."`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		RoomCount:            1,
		Concurrency:          4,
		MaxWidth:             8,
		MaxHeight:            8,
		Pitch:                2.5,
		WallHeight:           2.8,
		WallThickness:        0.1,
		DoorRatio:            0.2,
		WindowRatio:          0.3,
		PropDensity:          40,
		MaxPlacementAttempts: 25,
		WallSnapDistance:     3,
		LogLevel:             logs.InfoLevel.String(),
	}
}

// RandomDimensions reports whether at least one grid dimension is drawn at
// random.
func (c Config) RandomDimensions() bool {
	return c.Width == 0 || c.Height == 0
}

// Seeds returns the per-domain seeds requested for the first room
func (c Config) Seeds() seed.Seeds {
	return seed.Seeds{
		Topology:  c.SeedTopology,
		Openings:  c.SeedOpenings,
		Props:     c.SeedProps,
		Auxiliary: c.SeedAuxiliary,
	}
}

// SetSeeds requests s for the first room
func (c *Config) SetSeeds(s seed.Seeds) {
	c.SeedTopology = s.Topology
	c.SeedOpenings = s.Openings
	c.SeedProps = s.Props
	c.SeedAuxiliary = s.Auxiliary
}

// Validate checks the configuration before any geometry is built.
func (c Config) Validate() error {
	invalid := func(field string, value any, msg string) error {
		return errors.New(msg).
			WithType(ErrTypeConfiguration).
			WithTag("field", field).
			WithTag("value", value)
	}

	switch {
	case c.RoomCount < 1:
		return invalid("room_count", c.RoomCount, "room count must be positive")
	case c.Concurrency < 1:
		return invalid("concurrency", c.Concurrency, "concurrency must be positive")
	case c.Width < 0 || (c.Width > 0 && c.Width < MinDimension):
		return invalid("width", c.Width, "width is below the minimum")
	case c.Height < 0 || (c.Height > 0 && c.Height < MinDimension):
		return invalid("height", c.Height, "height is below the minimum")
	case c.Width == 0 && c.MaxWidth < MinDimension:
		return invalid("max_width", c.MaxWidth, "max width is below the minimum")
	case c.Height == 0 && c.MaxHeight < MinDimension:
		return invalid("max_height", c.MaxHeight, "max height is below the minimum")
	case c.Pitch <= 0:
		return invalid("pitch", c.Pitch, "pitch must be positive")
	case c.WallHeight <= 0:
		return invalid("wall_height", c.WallHeight, "wall height must be positive")
	case c.WallThickness < 0 || c.WallThickness >= c.Pitch:
		return invalid("wall_thickness", c.WallThickness, "wall thickness must be in [0, pitch)")
	case c.DoorRatio < 0 || c.DoorRatio > 1:
		return invalid("door_ratio", c.DoorRatio, "door ratio must be in [0, 1]")
	case c.WindowRatio < 0 || c.WindowRatio > 1:
		return invalid("window_ratio", c.WindowRatio, "window ratio must be in [0, 1]")
	case c.MinOpeningSpacing < 0:
		return invalid("min_opening_spacing", c.MinOpeningSpacing, "opening spacing can not be negative")
	case c.PropDensity < 0 || c.PropDensity > 100:
		return invalid("prop_density", c.PropDensity, "prop density must be in [0, 100]")
	case c.MaxPlacementAttempts < 1:
		return invalid("max_placement_attempts", c.MaxPlacementAttempts, "placement attempts must be positive")
	case c.WallSnapDistance < 0:
		return invalid("wall_snap_distance", c.WallSnapDistance, "wall snap distance can not be negative")
	}

	seen := make(map[int64]bool)
	for _, d := range seed.Domains() {
		v := c.Seeds().Get(d)
		if v == 0 {
			continue
		}
		if seen[v] {
			return invalid("seed_"+d.String(), v, "per-domain seeds must be distinct")
		}
		seen[v] = true
	}
	return nil
}
