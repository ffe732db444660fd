// Package physics keeps the collision geometry of a room and answers overlap
// queries against it.
//
// Transforms are committed in two phases: Stage records a new volume for a
// collider, Sync publishes every staged volume. Queries only ever see
// published volumes, and the checked Query refuses to run while stages are
// pending.
package physics

import (
	"math"
	"sort"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"isgt/pkg/engine/geom"
)

const (
	// ErrTypeUnsyncedQuery is returned by Query when stages are pending.
	ErrTypeUnsyncedQuery = "unsynced_query"

	// ErrTypeMissingGeometry is returned when a collider can not be found.
	ErrTypeMissingGeometry = "missing_geometry_reference"
)

// Tag classifies a collider.
type Tag uint8

const (
	Wall Tag = 1 << iota
	Door
	Window
	Prop
)

func (t Tag) String() string {
	switch t {
	case Wall:
		return "wall"
	case Door:
		return "door"
	case Window:
		return "window"
	case Prop:
		return "prop"
	default:
		return "unknown"
	}
}

// Mask selects the tags a query considers.
type Mask uint8

const (
	// MaskStructure matches the room shell: walls, doors and windows.
	MaskStructure = Mask(Wall | Door | Window)

	// MaskObstacles matches everything a prop may not overlap.
	MaskObstacles = MaskStructure | Mask(Prop)

	MaskAll = MaskObstacles
)

// Has reports whether the mask selects tag t.
func (m Mask) Has(t Tag) bool {
	return m&Mask(t) != 0
}

// Collider is a tagged bounding volume.
type Collider struct {
	ID     string
	Tag    Tag
	Bounds geom.Bounds
}

// Scene holds the colliders of one room. A Scene is owned by a single
// generation task and is not safe for concurrent use.
type Scene struct {
	colliders map[string]Collider
	order     []string
	staged    map[string]Collider
	syncs     int
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		colliders: make(map[string]Collider),
		staged:    make(map[string]Collider),
	}
}

// Add publishes c immediately, replacing any collider with the same ID.
func (s *Scene) Add(c Collider) {
	if _, ok := s.colliders[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.colliders[c.ID] = c
}

// Stage records c to be published by the next Sync.
func (s *Scene) Stage(c Collider) {
	s.staged[c.ID] = c
}

// Pending returns the number of staged colliders.
func (s *Scene) Pending() int {
	return len(s.staged)
}

// Sync publishes every staged collider and returns how many were published.
func (s *Scene) Sync() int {
	n := len(s.staged)
	for _, id := range s.stagedOrder() {
		s.Add(s.staged[id])
	}
	s.staged = make(map[string]Collider)
	s.syncs++
	return n
}

// Syncs returns how many times Sync was called.
func (s *Scene) Syncs() int {
	return s.syncs
}

// Remove deletes the collider with the given ID, published or staged.
func (s *Scene) Remove(id string) {
	delete(s.staged, id)
	if _, ok := s.colliders[id]; !ok {
		return
	}
	delete(s.colliders, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Get returns the published collider with the given ID.
func (s *Scene) Get(id string) (Collider, bool) {
	c, ok := s.colliders[id]
	return c, ok
}

// Len returns the number of published colliders.
func (s *Scene) Len() int {
	return len(s.colliders)
}

// Overlaps reports whether b overlaps any published collider selected by
// mask.
func (s *Scene) Overlaps(b geom.Bounds, mask Mask) bool {
	for _, id := range s.order {
		c := s.colliders[id]
		if mask.Has(c.Tag) && c.Bounds.Overlaps(b) {
			return true
		}
	}
	return false
}

// OverlapAll returns every published collider selected by mask that
// overlaps b, in insertion order.
func (s *Scene) OverlapAll(b geom.Bounds, mask Mask) []Collider {
	var hits []Collider
	for _, id := range s.order {
		c := s.colliders[id]
		if mask.Has(c.Tag) && c.Bounds.Overlaps(b) {
			hits = append(hits, c)
		}
	}
	return hits
}

// Query returns the colliders selected by mask that overlap the published
// collider id, excluding itself. It fails while stages are pending.
func (s *Scene) Query(id string, mask Mask) ([]Collider, error) {
	if len(s.staged) != 0 {
		return nil, errors.New("query issued before sync").
			WithType(ErrTypeUnsyncedQuery).
			WithTag("id", id).
			WithTag("pending", len(s.staged))
	}

	self, ok := s.colliders[id]
	if !ok {
		return nil, errors.New("collider not found").
			WithType(ErrTypeMissingGeometry).
			WithTag("id", id)
	}

	var hits []Collider
	for _, c := range s.OverlapAll(self.Bounds, mask) {
		if c.ID != id {
			hits = append(hits, c)
		}
	}
	return hits, nil
}

// Nearest returns the published collider selected by mask whose bounds are
// closest to p on the horizontal plane, within maxDist.
func (s *Scene) Nearest(p geom.Vector3, mask Mask, maxDist float64) (Collider, float64, bool) {
	var (
		best     Collider
		bestDist = math.Inf(1)
		found    bool
	)

	for _, id := range s.order {
		c := s.colliders[id]
		if !mask.Has(c.Tag) {
			continue
		}
		d := c.Bounds.HorizontalDistanceToPoint(p)
		if d <= maxDist && d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, bestDist, found
}

// Colliders returns the published colliders selected by mask in insertion
// order.
func (s *Scene) Colliders(mask Mask) []Collider {
	var res []Collider
	for _, id := range s.order {
		if c := s.colliders[id]; mask.Has(c.Tag) {
			res = append(res, c)
		}
	}
	return res
}

func (s *Scene) stagedOrder() []string {
	ids := make([]string, 0, len(s.staged))
	for id := range s.staged {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
