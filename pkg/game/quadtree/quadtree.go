// Package quadtree partitions the floor of a room to find unoccupied space.
//
// The tree splits in x and z and keeps the full room height on every node.
// Inserting an occupant records it on every node it overlaps, down to the
// maximum depth, so occupancy is visible at each granularity.
package quadtree

import (
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"isgt/pkg/engine/geom"
	"isgt/pkg/engine/physics"
)

// Occupant is anything with a bounding volume that can be inserted.
type Occupant interface {
	// BoundingVolume returns the collider volume of the occupant, or false
	// when the occupant has none.
	BoundingVolume() (geom.Bounds, bool)
}

// Category tells the tree whether empty nodes must touch a wall.
type Category interface {
	RequiresWall() bool
}

// Node is a quadtree node. The root is returned by New.
type Node struct {
	bounds       geom.Bounds
	depth        int
	maxDepth     int
	wallAdjacent bool

	occupants []Occupant
	children  []*Node

	scene     *physics.Scene
	footprint geom.Bounds
}

// Option configures a tree at construction.
type Option func(*Node)

// WithFootprint restricts subdivision to nodes overlapping b. It defaults to
// the root bounds.
func WithFootprint(b geom.Bounds) Option {
	return func(n *Node) {
		n.footprint = b
	}
}

// New returns the root of a tree covering bounds. Wall adjacency of every
// node is computed from the structure colliders of scene.
func New(bounds geom.Bounds, scene *physics.Scene, maxDepth int, options ...Option) *Node {
	root := &Node{
		bounds:    bounds,
		maxDepth:  maxDepth,
		scene:     scene,
		footprint: bounds,
	}
	for _, o := range options {
		o(root)
	}
	root.wallAdjacent = root.touchesWall()
	return root
}

// DetermineMaxDepth returns the depth cap of a tree over a floor of the
// given area.
func DetermineMaxDepth(area float64) int {
	if area <= 0 {
		return 5
	}
	return 5 + int(math.Floor(4*math.Sqrt(area)/40))
}

func (n *Node) newChild(bounds geom.Bounds) *Node {
	c := &Node{
		bounds:    bounds,
		depth:     n.depth + 1,
		maxDepth:  n.maxDepth,
		scene:     n.scene,
		footprint: n.footprint,
	}
	c.wallAdjacent = c.touchesWall()
	return c
}

func (n *Node) touchesWall() bool {
	return n.scene != nil && n.scene.Overlaps(n.bounds, physics.MaskStructure)
}

// Insert records o on this node and on every descendant it overlaps. It
// returns false when o does not overlap the node.
func (n *Node) Insert(o Occupant) (bool, error) {
	volume, ok := o.BoundingVolume()
	if !ok {
		return false, errors.New("occupant has no bounding volume").
			WithType(physics.ErrTypeMissingGeometry)
	}
	return n.insert(o, volume), nil
}

func (n *Node) insert(o Occupant, volume geom.Bounds) bool {
	if !n.bounds.Overlaps(volume) {
		return false
	}

	n.occupants = append(n.occupants, o)
	if n.depth >= n.maxDepth || !n.bounds.OverlapsHorizontally(n.footprint) {
		return true
	}

	if n.children == nil {
		quads := n.bounds.Quadrants()
		n.children = make([]*Node, 0, len(quads))
		for _, q := range quads {
			n.children = append(n.children, n.newChild(q))
		}
	}
	for _, c := range n.children {
		c.insert(o, volume)
	}
	return true
}

// FindBiggestEmptyNodes returns the empty leaves found at the shallowest
// depth. When category requires a wall, only wall-adjacent leaves are
// returned unless there are none.
func (n *Node) FindBiggestEmptyNodes(category Category) []*Node {
	var (
		all      []*Node
		adjacent []*Node
		best     = math.MaxInt
	)

	n.Walk(func(node *Node) bool {
		if !node.IsEmpty() {
			return true
		}
		switch {
		case node.depth < best:
			best = node.depth
			all = []*Node{node}
			adjacent = adjacent[:0]
		case node.depth == best:
			all = append(all, node)
		default:
			return false
		}
		if node.wallAdjacent {
			adjacent = append(adjacent, node)
		}
		return false
	})

	if category != nil && category.RequiresWall() && len(adjacent) != 0 {
		return adjacent
	}
	return all
}

// AllEmptyNodes returns the bounds of every empty leaf. When the tree has
// none, the root bounds are returned as the only region.
func (n *Node) AllEmptyNodes() []geom.Bounds {
	var empty []geom.Bounds
	n.Walk(func(node *Node) bool {
		if node.IsEmpty() {
			empty = append(empty, node.bounds)
			return false
		}
		return true
	})

	if len(empty) == 0 {
		return []geom.Bounds{n.bounds}
	}
	return empty
}

// Walk calls fn on n and its descendants depth first. Children of a node are
// skipped when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// IsEmpty reports whether the node has no occupant.
func (n *Node) IsEmpty() bool {
	return len(n.occupants) == 0
}

// IsLeaf reports whether the node has not been subdivided.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) Bounds() geom.Bounds {
	return n.bounds
}

func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) MaxDepth() int {
	return n.maxDepth
}

func (n *Node) WallAdjacent() bool {
	return n.wallAdjacent
}

func (n *Node) Occupants() []Occupant {
	return n.occupants
}

func (n *Node) Children() []*Node {
	return n.children
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
