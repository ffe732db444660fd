// Package room drives the generation of complete rooms: topology, openings,
// props and the handoff consumed by the photography pipeline.
package room

import (
	"context"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"isgt/pkg/engine/geom"
	"isgt/pkg/engine/physics"
	"isgt/pkg/engine/seed"
	"isgt/pkg/engine/world"
	"isgt/pkg/game/config"
	"isgt/pkg/game/generator"
	"isgt/pkg/game/openings"
	"isgt/pkg/game/props"
	"isgt/pkg/game/quadtree"
)

// DoorClearance is how far the collider of a door reaches into the room so
// that props never block it
const DoorClearance = 0.8

// RoomGenerator is the sequence of stages a room flavour goes through.
// Stages must run in declaration order.
type RoomGenerator interface {
	InitRoom(ctx context.Context) error
	CreateOpenings(ctx context.Context) error
	FillWithObjects(ctx context.Context) error
	GenerateDatabaseHandoff(ctx context.Context) (*Handoff, error)
}

// Generate runs every stage of g and returns its handoff
func Generate(ctx context.Context, g RoomGenerator) (*Handoff, error) {
	if err := g.InitRoom(ctx); err != nil {
		return nil, err
	}
	if err := g.CreateOpenings(ctx); err != nil {
		return nil, err
	}
	if err := g.FillWithObjects(ctx); err != nil {
		return nil, err
	}
	return g.GenerateDatabaseHandoff(ctx)
}

// ClassicRoom is a single maze-carved room with doors and windows on its
// exterior walls, furnished from a prefab catalog.
type ClassicRoom struct {
	ID    string
	Seeds seed.Seeds

	config  config.Config
	catalog *props.Catalog
	grids   generator.GridGenerator
	planner openings.Planner
	placer  props.PropPlacer
	signal  *Signal

	grid     *world.Grid
	scene    *physics.Scene
	tree     *quadtree.Node
	floor    geom.Bounds
	openings openings.Result
	props    props.Result
	regions  []geom.Bounds
}

// Option configures a ClassicRoom
type Option func(*ClassicRoom)

// WithGridGenerator replaces the topology generator
func WithGridGenerator(g generator.GridGenerator) Option {
	return func(r *ClassicRoom) {
		r.grids = g
	}
}

// WithPropPlacer replaces the prop placer
func WithPropPlacer(p props.PropPlacer) Option {
	return func(r *ClassicRoom) {
		r.placer = p
	}
}

// NewClassicRoom returns a room generated from cfg and seeds. The catalog
// is shared and must not be modified while rooms are generated.
func NewClassicRoom(id string, cfg config.Config, catalog *props.Catalog, seeds seed.Seeds, options ...Option) *ClassicRoom {
	placer := props.NewPlanner()
	placer.MaxAttempts = cfg.MaxPlacementAttempts
	placer.WallSnapDistance = cfg.WallSnapDistance

	r := &ClassicRoom{
		ID:      id,
		Seeds:   seeds,
		config:  cfg,
		catalog: catalog,
		grids:   generator.DefaultGenerator,
		planner: openings.NewPlanner(cfg.DoorRatio, cfg.WindowRatio, cfg.MinOpeningSpacing),
		placer:  placer,
		signal:  NewSignal(),
	}
	for _, o := range options {
		o(r)
	}
	return r
}

// InitRoom builds and carves the grid
func (r *ClassicRoom) InitRoom(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.config.Validate(); err != nil {
		return err
	}
	if err := r.catalog.Validate(); err != nil {
		return err
	}
	if !r.Seeds.IsComplete() {
		return errors.New("room seeds are incomplete").
			WithType(ErrTypeConfiguration).
			WithTag("room", r.ID)
	}

	rng := r.Seeds.Rand(seed.Topology)
	grid, err := r.grids.Generate(rng, generator.ParamsFromConfig(rng, r.config))
	if err != nil {
		return err
	}
	r.grid = grid

	logs.WithTag("room", r.ID).
		WithTag("generator", r.grids.Name()).
		WithTag("width", grid.Width()).
		WithTag("height", grid.Height()).
		Debug("grid carved")
	return nil
}

// CreateOpenings places doors and windows, then publishes the wall geometry
// to the collision scene
func (r *ClassicRoom) CreateOpenings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.grid == nil {
		return r.stageError("openings created before the grid")
	}

	r.openings = r.planner.Plan(r.Seeds.Rand(seed.Openings), r.grid)
	for _, o := range r.openings.Openings {
		instrumentOpening(o.Type)
	}
	for _, s := range r.openings.Shortfalls {
		instrumentShortfall(s.Type.String())
	}

	r.grid.ResolveWallGeometry()
	r.scene = physics.NewScene()
	r.grid.ForEachCell(func(x, y int, cell *world.Cell) {
		for _, w := range cell.Walls {
			r.scene.Add(wallCollider(cell, w))
		}
	})

	logs.WithTag("room", r.ID).
		WithTag("doors", r.openings.Doors).
		WithTag("windows", r.openings.Windows).
		Debug("openings created")
	return nil
}

// FillWithObjects furnishes the room and moves it to the Filled state
func (r *ClassicRoom) FillWithObjects(ctx context.Context) error {
	if r.scene == nil {
		return r.stageError("room filled before its openings were created")
	}

	bounds := r.grid.Bounds()
	r.floor = bounds.Expand(-r.grid.WallThickness() / 2)
	r.tree = quadtree.New(bounds, r.scene, quadtree.DetermineMaxDepth(bounds.Area()), quadtree.WithFootprint(r.floor))

	res, err := r.placer.Place(ctx, props.Request{
		Rng:     r.Seeds.Rand(seed.Props),
		Scene:   r.scene,
		Tree:    r.tree,
		Catalog: r.catalog,
		Floor:   r.floor,
		Target:  props.TargetCount(r.config.PropDensity, r.grid.Width(), r.grid.Height(), r.grid.Pitch()),
	})
	if err != nil {
		return err
	}
	r.props = res
	r.regions = r.tree.AllEmptyNodes()

	instrumentProps(len(res.Props), res.Discarded)
	if res.Shortfall() > 0 {
		instrumentShortfall("prop")
	}

	r.signal.Set(Filled)
	logs.WithTag("room", r.ID).
		WithTag("props", len(res.Props)).
		WithTag("target", res.Target).
		WithTag("empty_regions", len(r.regions)).
		Debug("room filled")
	return nil
}

// GenerateDatabaseHandoff returns the records handed to the photography
// pipeline and moves the room to the DatabaseGenerated state
func (r *ClassicRoom) GenerateDatabaseHandoff(ctx context.Context) (*Handoff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.signal.State() < Filled {
		return nil, r.stageError("handoff generated before the room was filled")
	}

	h := NewHandoff(r.Layout(), r.Seeds.Rand(seed.Auxiliary))
	r.signal.Set(DatabaseGenerated)
	h.State = r.signal.State().String()
	return h, nil
}

// Signal returns the state signal of the room
func (r *ClassicRoom) Signal() *Signal {
	return r.signal
}

// State returns the current state of the room
func (r *ClassicRoom) State() State {
	return r.signal.State()
}

// Wait blocks until the room reaches state
func (r *ClassicRoom) Wait(ctx context.Context, state State) error {
	return r.signal.Wait(ctx, state)
}

// Scene returns the collision scene, nil before CreateOpenings
func (r *ClassicRoom) Scene() *physics.Scene {
	return r.scene
}

// Tree returns the quadtree, nil before FillWithObjects
func (r *ClassicRoom) Tree() *quadtree.Node {
	return r.tree
}

// Layout returns the current output of the room
func (r *ClassicRoom) Layout() Layout {
	return Layout{
		ID:                r.ID,
		Seeds:             r.Seeds,
		Grid:              r.grid,
		Openings:          r.openings.Openings,
		OpeningShortfalls: r.openings.Shortfalls,
		Props:             r.props.Props,
		PropTarget:        r.props.Target,
		EmptyRegions:      r.regions,
		State:             r.signal.State(),
	}
}

func (r *ClassicRoom) stageError(msg string) error {
	return errors.New(msg).
		WithType(ErrTypeInvalidStage).
		WithTag("room", r.ID).
		WithTag("state", r.signal.State().String())
}

func wallCollider(cell *world.Cell, w world.WallSegment) physics.Collider {
	c := physics.Collider{
		ID:     cell.Name() + ":" + w.Direction.String(),
		Tag:    physics.Wall,
		Bounds: w.Bounds,
	}

	switch w.State {
	case world.Window:
		c.Tag = physics.Window
	case world.Door:
		c.Tag = physics.Door
		c.Bounds = extendInwards(w.Bounds, w.Direction, DoorClearance)
	}
	return c
}

// extendInwards grows b by d towards the inside of the cell whose wall faces
// dir
func extendInwards(b geom.Bounds, dir world.Direction, d float64) geom.Bounds {
	switch dir {
	case world.Front:
		b.Min.Z -= d
	case world.Back:
		b.Max.Z += d
	case world.Left:
		b.Max.X += d
	case world.Right:
		b.Min.X -= d
	}
	return b
}
