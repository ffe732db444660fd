package openings

import (
	"math"
	"math/rand"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"isgt/pkg/engine/world"
)

// ErrTypePlacementShortfall tags a target that was not met within the
// attempt bound. It is logged, never returned.
const ErrTypePlacementShortfall = "placement_shortfall"

// Planner places doors and windows on the wall sections of a grid.
//
// Doors are placed first on every section, then windows. For each section
// the planner draws random cells up to twice the section target. A draw is
// rejected when it is the cell committed just before on that section, when
// its wall is already an opening, or when it sits closer than MinSpacing
// cells to an opening of the section.
type Planner struct {
	DoorRatio   float64
	WindowRatio float64
	MinSpacing  int

	DoorSize   Size
	WindowSize Size
}

// NewPlanner returns a planner with the default opening sizes
func NewPlanner(doorRatio, windowRatio float64, minSpacing int) Planner {
	return Planner{
		DoorRatio:   doorRatio,
		WindowRatio: windowRatio,
		MinSpacing:  minSpacing,
		DoorSize:    DefaultDoorSize,
		WindowSize:  DefaultWindowSize,
	}
}

// Shortfall records a section whose target was not reached
type Shortfall struct {
	Type      world.WallState
	Direction world.Direction
	Target    int
	Placed    int
}

// Result is the outcome of a planning run
type Result struct {
	Openings   []Opening
	Doors      int
	Windows    int
	Shortfalls []Shortfall
}

// Target returns the number of openings wanted on a section of length n
func Target(ratio float64, n int) int {
	return int(math.Round(ratio * float64(n)))
}

// Plan mutates the exterior walls of grid and returns the placed openings.
// Sections must have been built.
func (p Planner) Plan(rng *rand.Rand, grid *world.Grid) Result {
	var res Result

	passes := []struct {
		t     world.WallState
		ratio float64
		size  Size
	}{
		{world.Door, p.DoorRatio, p.DoorSize},
		{world.Window, p.WindowRatio, p.WindowSize},
	}

	for _, pass := range passes {
		for _, section := range grid.Sections() {
			placed := p.planSection(rng, grid, section, pass.t, pass.ratio, pass.size, &res)
			target := Target(pass.ratio, section.Len())
			if placed >= target {
				continue
			}

			res.Shortfalls = append(res.Shortfalls, Shortfall{
				Type:      pass.t,
				Direction: section.Direction,
				Target:    target,
				Placed:    placed,
			})
			logs.WithTag("section", section.Direction.String()).
				WithTag("type", pass.t.String()).
				WithTag("target", target).
				WithTag("placed", placed).
				Warn(errors.New("opening target not met").
					WithType(ErrTypePlacementShortfall))
		}
	}
	return res
}

func (p Planner) planSection(rng *rand.Rand, grid *world.Grid, section *world.WallSection, t world.WallState, ratio float64, size Size, res *Result) int {
	target := Target(ratio, section.Len())
	if target == 0 || section.Len() == 0 {
		return 0
	}

	placed := 0
	last := -1
	for attempt := 0; attempt < 2*target && placed < target; attempt++ {
		idx := rng.Intn(section.Len())
		if idx == last {
			continue
		}

		cell := section.Cells[idx]
		// A corner cell belongs to two sections and still hosts at most
		// one opening.
		if cell.HasOpening() {
			continue
		}
		if !p.spaced(section, idx) {
			continue
		}

		cell.SetWall(section.Direction, t)
		o := resolve(grid, cell, section.Direction, t, size)
		o.Index = idx
		res.Openings = append(res.Openings, o)
		if t == world.Door {
			res.Doors++
		} else {
			res.Windows++
		}

		last = idx
		placed++
	}
	return placed
}

// spaced reports whether idx keeps MinSpacing cells away from the openings
// already on the section
func (p Planner) spaced(section *world.WallSection, idx int) bool {
	if p.MinSpacing <= 0 {
		return true
	}
	for _, other := range section.Openings() {
		d := idx - other
		if d < 0 {
			d = -d
		}
		if d < p.MinSpacing {
			return false
		}
	}
	return true
}
