package room

import (
	"isgt/pkg/engine/geom"
	"isgt/pkg/engine/seed"
	"isgt/pkg/engine/world"
	"isgt/pkg/game/openings"
	"isgt/pkg/game/props"
)

// Layout is the output of a room generation
type Layout struct {
	ID    string
	Seeds seed.Seeds
	Grid  *world.Grid

	Openings          []openings.Opening
	OpeningShortfalls []openings.Shortfall

	Props      []*props.Prop
	PropTarget int

	// EmptyRegions are the unoccupied floor regions left after furnishing.
	// A single region equal to the room bounds means no empty leaf was left.
	EmptyRegions []geom.Bounds

	State State
}

// CountOpenings returns the number of openings of type t
func (l Layout) CountOpenings(t world.WallState) int {
	n := 0
	for _, o := range l.Openings {
		if o.Type == t {
			n++
		}
	}
	return n
}

// PropsByCategory groups the props of the layout by category
func (l Layout) PropsByCategory() map[props.Category][]*props.Prop {
	res := make(map[props.Category][]*props.Prop)
	for _, p := range l.Props {
		res[p.Category()] = append(res[p.Category()], p)
	}
	return res
}
