package world

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"isgt/pkg/engine/geom"
)

// ErrTypeUnreachableCell is the error type returned by Validate when the
// carved grid is not fully connected.
const ErrTypeUnreachableCell = "unreachable_cell"

// Grid is the room shell: a fixed width×height array of cells spaced by a
// constant pitch, plus the four exterior wall sections.
type Grid struct {
	cells  [][]*Cell
	width  int
	height int

	pitch         float64
	wallHeight    float64
	wallThickness float64

	sections map[Direction]*WallSection
}

// NewGrid creates a new grid with every cell closed and unvisited
func NewGrid(width, height int, pitch, wallHeight, wallThickness float64) *Grid {
	g := &Grid{
		pitch:         pitch,
		wallHeight:    wallHeight,
		wallThickness: wallThickness,
	}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]*Cell, height)
	for y := 0; y < height; y++ {
		g.cells[y] = make([]*Cell, width)
		for x := 0; x < width; x++ {
			g.cells[y][x] = NewCell(x, y)
		}
	}
	g.sections = nil
}

// Width returns the number of cells along x
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of cells along y
func (g *Grid) Height() int {
	return g.height
}

// Pitch returns the world size of a cell
func (g *Grid) Pitch() float64 {
	return g.pitch
}

// WallHeight returns the height of the walls
func (g *Grid) WallHeight() float64 {
	return g.wallHeight
}

// WallThickness returns the thickness of the walls
func (g *Grid) WallThickness() float64 {
	return g.wallThickness
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && (x == 0 || y == 0 || x == g.width-1 || y == g.height-1)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(x, y int) *Cell {
	if !g.IsValidPosition(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// GetCellRelative returns the cell adjacent to c in the given direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	dx, dy := dir.Delta()
	return g.GetCell(c.X+dx, c.Y+dy)
}

// IsExterior returns true if the side of c in the given direction faces
// outside the grid
func (g *Grid) IsExterior(c *Cell, dir Direction) bool {
	return c != nil && dir.IsValid() && g.GetCellRelative(c, dir) == nil
}

// OpenWall opens the wall between c and its neighbour in dir, on both sides.
// Returns false for exterior walls.
func (g *Grid) OpenWall(c *Cell, dir Direction) bool {
	adj := g.GetCellRelative(c, dir)
	if adj == nil {
		return false
	}
	c.SetWall(dir, Open)
	adj.SetWall(dir.Opposite(), Open)
	return true
}

// ForEachCell iterates over all cells row by row
func (g *Grid) ForEachCell(fn func(x, y int, cell *Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// Bounds returns the axis-aligned volume of the room
func (g *Grid) Bounds() geom.Bounds {
	return geom.NewBounds(
		geom.Vector3{},
		geom.Vector3{X: float64(g.width) * g.pitch, Y: g.wallHeight, Z: float64(g.height) * g.pitch},
	)
}

// CellBounds returns the floor-to-ceiling volume of a cell
func (g *Grid) CellBounds(c *Cell) geom.Bounds {
	minX := float64(c.X) * g.pitch
	minZ := float64(c.Y) * g.pitch
	return geom.NewBounds(
		geom.Vector3{X: minX, Y: 0, Z: minZ},
		geom.Vector3{X: minX + g.pitch, Y: g.wallHeight, Z: minZ + g.pitch},
	)
}

// WallBounds returns the volume of the wall on the given side of c. The wall
// is centred on the cell edge and extends half its thickness on both sides.
func (g *Grid) WallBounds(c *Cell, dir Direction) geom.Bounds {
	b := g.CellBounds(c)
	half := g.wallThickness / 2
	switch dir {
	case Front:
		return geom.NewBounds(
			geom.Vector3{X: b.Min.X, Y: 0, Z: b.Max.Z - half},
			geom.Vector3{X: b.Max.X, Y: g.wallHeight, Z: b.Max.Z + half})
	case Back:
		return geom.NewBounds(
			geom.Vector3{X: b.Min.X, Y: 0, Z: b.Min.Z - half},
			geom.Vector3{X: b.Max.X, Y: g.wallHeight, Z: b.Min.Z + half})
	case Left:
		return geom.NewBounds(
			geom.Vector3{X: b.Min.X - half, Y: 0, Z: b.Min.Z},
			geom.Vector3{X: b.Min.X + half, Y: g.wallHeight, Z: b.Max.Z})
	case Right:
		return geom.NewBounds(
			geom.Vector3{X: b.Max.X - half, Y: 0, Z: b.Min.Z},
			geom.Vector3{X: b.Max.X + half, Y: g.wallHeight, Z: b.Max.Z})
	}
	return b
}

// ResolveWallGeometry rebuilds every cell's wall segment records from the
// current wall states. Open sides have no geometry.
func (g *Grid) ResolveWallGeometry() {
	g.ForEachCell(func(x, y int, cell *Cell) {
		cell.Walls = cell.Walls[:0]
		for _, dir := range AllDirections() {
			state := cell.Wall(dir)
			if state == Open {
				continue
			}
			cell.Walls = append(cell.Walls, WallSegment{
				Direction: dir,
				State:     state,
				Bounds:    g.WallBounds(cell, dir),
			})
		}
	})
}

// Reachable returns the set of cells reachable from start through open walls
func (g *Grid) Reachable(start *Cell) mapset.Set[*Cell] {
	visited := mapset.New[*Cell]()
	if start == nil {
		return visited
	}
	queue := []*Cell{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			if !current.IsOpen(dir) {
				continue
			}
			n := g.GetCellRelative(current, dir)
			if n != nil && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Validate checks that every cell is reachable from (0,0)
func (g *Grid) Validate() error {
	if g.width <= 0 || g.height <= 0 {
		return errors.New("grid has invalid dimensions").
			WithType(ErrTypeUnreachableCell).
			WithTag("width", g.width).
			WithTag("height", g.height)
	}

	reachable := g.Reachable(g.GetCell(0, 0))
	if reachable.Size() != g.width*g.height {
		return errors.New("grid is not fully connected").
			WithType(ErrTypeUnreachableCell).
			WithTag("reachable", reachable.Size()).
			WithTag("cells", g.width*g.height)
	}
	return nil
}
