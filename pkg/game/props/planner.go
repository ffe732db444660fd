package props

import (
	"context"
	"math"
	"math/rand"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"isgt/pkg/engine/geom"
	"isgt/pkg/engine/physics"
	"isgt/pkg/game/quadtree"
)

const (
	// ErrTypePlacementShortfall tags a prop target that was not met. It is
	// logged, never returned.
	ErrTypePlacementShortfall = "placement_shortfall"

	DefaultMaxAttempts      = 25
	DefaultWallSnapDistance = 3
)

// TargetCount returns how many props a room of width×height cells spaced by
// pitch should receive at the given density (0-100)
func TargetCount(density float64, width, height int, pitch float64) int {
	footprint := float64(width*height) * pitch
	return int(math.Round(density / 100 * footprint / 2))
}

// Request carries everything a placement run works on. The scene and the
// tree belong to a single room.
type Request struct {
	Rng     *rand.Rand
	Scene   *physics.Scene
	Tree    *quadtree.Node
	Catalog *Catalog

	// Floor is the volume props must stay within
	Floor  geom.Bounds
	Target int
}

// Result is the outcome of a placement run
type Result struct {
	Props     []*Prop
	Target    int
	Draws     int
	Discarded int

	// Terminated is set when the tree ran out of empty nodes
	Terminated bool
}

// Shortfall returns how many props are missing from the target
func (r Result) Shortfall() int {
	if n := r.Target - len(r.Props); n > 0 {
		return n
	}
	return 0
}

// PropPlacer fills a room with props
type PropPlacer interface {
	Place(ctx context.Context, req Request) (Result, error)
}

// Planner places props in the biggest empty regions of a quadtree.
//
// Each draw picks a random prefab and a random node among the biggest empty
// ones, then tries up to MaxAttempts positions in it. Props of wall-aligned
// categories are turned to the nearest wall within WallSnapDistance. Every
// candidate transform is staged and synced before its overlap query. A draw
// whose attempts all fail is discarded. Placement stops at the target or
// when the tree has no empty node left.
type Planner struct {
	MaxAttempts      int
	WallSnapDistance float64
}

// NewPlanner returns a planner with the default limits
func NewPlanner() *Planner {
	return &Planner{
		MaxAttempts:      DefaultMaxAttempts,
		WallSnapDistance: DefaultWallSnapDistance,
	}
}

func (p *Planner) Place(ctx context.Context, req Request) (Result, error) {
	res := Result{Target: req.Target}
	if err := req.Catalog.Validate(); err != nil {
		return res, err
	}

	for res.Draws < req.Target {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Draws++

		prefab := req.Catalog.Pick(req.Rng)
		nodes := req.Tree.FindBiggestEmptyNodes(prefab.Category)
		if len(nodes) == 0 {
			res.Terminated = true
			break
		}
		node := nodes[req.Rng.Intn(len(nodes))]

		prop, err := NewProp(req.Rng, prefab, req.Scene)
		if err != nil {
			return res, errors.New("creating prop failed").Wrap(err)
		}

		placed, err := p.attempt(req, node, prop)
		if err != nil {
			return res, err
		}
		if !placed {
			req.Scene.Remove(prop.ID)
			res.Discarded++
			logs.WithTag("prefab", prefab.Name).
				WithTag("attempts", p.MaxAttempts).
				Debug("prop discarded")
			continue
		}

		if _, err := req.Tree.Insert(prop); err != nil {
			req.Scene.Remove(prop.ID)
			res.Discarded++
			logs.WithTag("prop", prop.ID).Warn(err)
			continue
		}
		res.Props = append(res.Props, prop)
	}

	if n := res.Shortfall(); n > 0 {
		logs.WithTag("target", res.Target).
			WithTag("placed", len(res.Props)).
			WithTag("terminated", res.Terminated).
			Warn(errors.New("prop target not met").
				WithType(ErrTypePlacementShortfall))
	}
	return res, nil
}

// attempt tries random transforms of prop inside node and leaves the
// first valid one published in the scene
func (p *Planner) attempt(req Request, node *quadtree.Node, prop *Prop) (bool, error) {
	b := node.Bounds()
	size := b.Size()

	for i := 0; i < p.MaxAttempts; i++ {
		position := geom.Vector3{
			X: b.Min.X + req.Rng.Float64()*size.X,
			Y: req.Floor.Min.Y,
			Z: b.Min.Z + req.Rng.Float64()*size.Z,
		}
		yaw := float64(req.Rng.Intn(4)) * 90
		if prop.Category().RequiresWall() {
			if wallYaw, ok := p.wallYaw(req.Scene, position, prop.Category()); ok {
				yaw = wallYaw
			}
		}
		prop.SetTransform(position, yaw)

		req.Scene.Stage(prop.Collider())
		req.Scene.Sync()

		hits, err := req.Scene.Query(prop.ID, physics.MaskObstacles)
		if err != nil {
			return false, err
		}
		if len(hits) == 0 && req.Floor.Contains(prop.Bounds) {
			return true, nil
		}
	}
	return false, nil
}

// wallYaw returns the yaw turning a prop at position towards the nearest
// wall, or away from it for categories that do not face walls
func (p *Planner) wallYaw(scene *physics.Scene, position geom.Vector3, category Category) (float64, bool) {
	wall, _, ok := scene.Nearest(position, physics.Mask(physics.Wall), p.WallSnapDistance)
	if !ok {
		return 0, false
	}

	closest := geom.Vector3{
		X: geom.Clamp(position.X, wall.Bounds.Min.X, wall.Bounds.Max.X),
		Z: geom.Clamp(position.Z, wall.Bounds.Min.Z, wall.Bounds.Max.Z),
	}
	dx := closest.X - position.X
	dz := closest.Z - position.Z
	if dx == 0 && dz == 0 {
		return 0, false
	}

	yaw := math.Atan2(dx, dz) * 180 / math.Pi
	if !category.FacesWall() {
		yaw += 180
	}
	return geom.SnapYaw(yaw), true
}
