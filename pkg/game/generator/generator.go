// Package generator builds the topology of a room: a grid of cells whose
// interior walls are carved open, plus the four exterior wall sections.
package generator

import (
	"math/rand"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"isgt/pkg/engine/world"
	"isgt/pkg/game/config"
)

// Params describes the grid to generate
type Params struct {
	Width         int
	Height        int
	Pitch         float64
	WallHeight    float64
	WallThickness float64
}

// ParamsFromConfig returns the grid parameters of c. Random dimensions are
// drawn from rng when c leaves them unset.
func ParamsFromConfig(rng *rand.Rand, c config.Config) Params {
	w, h := c.Width, c.Height
	if c.RandomDimensions() {
		rw, rh := RandomDimensions(rng, c.MaxWidth, c.MaxHeight)
		if w == 0 {
			w = rw
		}
		if h == 0 {
			h = rh
		}
	}
	return Params{
		Width:         w,
		Height:        h,
		Pitch:         c.Pitch,
		WallHeight:    c.WallHeight,
		WallThickness: c.WallThickness,
	}
}

// Validate checks that the grid can be built
func (p Params) Validate() error {
	if p.Width < config.MinDimension || p.Height < config.MinDimension {
		return errors.New("grid dimensions are below the minimum").
			WithType(config.ErrTypeConfiguration).
			WithTag("width", p.Width).
			WithTag("height", p.Height).
			WithTag("min", config.MinDimension)
	}
	if p.Pitch <= 0 {
		return errors.New("grid pitch must be positive").
			WithType(config.ErrTypeConfiguration).
			WithTag("pitch", p.Pitch)
	}
	return nil
}

// GridGenerator is an interface for room topology algorithms
type GridGenerator interface {
	Generate(rng *rand.Rand, p Params) (*world.Grid, error)
	Name() string
}

// Available generators
var (
	MazeCarve = &MazeCarveGenerator{}
)

// DefaultGenerator is the default topology generator
var DefaultGenerator GridGenerator = MazeCarve

// RandomDimensions picks a width in [2, maxWidth] and a height in
// [2, maxHeight]. Bounds below the minimum are raised to it.
func RandomDimensions(rng *rand.Rand, maxWidth, maxHeight int) (int, int) {
	return randomDimension(rng, maxWidth), randomDimension(rng, maxHeight)
}

func randomDimension(rng *rand.Rand, max int) int {
	if max <= config.MinDimension {
		return config.MinDimension
	}
	return config.MinDimension + rng.Intn(max-config.MinDimension+1)
}
