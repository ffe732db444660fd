package generator

import (
	"math/rand"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"isgt/pkg/engine/world"
)

// MazeCarveGenerator carves a grid with a depth-first walk from (0,0).
//
// Visiting a cell opens every wall that faces another cell of the grid, so
// interior cells end up with four open sides, edge cells with three and
// corners with two. The walk then moves to the first unvisited neighbour in
// carve order and repeats until none is left. Neighbour choice follows the
// scan order, not the rng, so the topology only depends on the dimensions.
type MazeCarveGenerator struct{}

// Name returns the name of this generator
func (g *MazeCarveGenerator) Name() string {
	return "Maze Carve"
}

// Generate builds and carves a grid, then partitions its boundary into wall
// sections
func (g *MazeCarveGenerator) Generate(rng *rand.Rand, p Params) (*world.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid := world.NewGrid(p.Width, p.Height, p.Pitch, p.WallHeight, p.WallThickness)
	carve(grid, grid.GetCell(0, 0))
	grid.BuildWallSections()

	if err := grid.Validate(); err != nil {
		return nil, errors.New("carved grid is not connected").Wrap(err)
	}
	return grid, nil
}

func carve(grid *world.Grid, cell *world.Cell) {
	cell.Visited = true
	for _, dir := range world.CarveOrder() {
		grid.OpenWall(cell, dir)
	}

	for {
		next := firstUnvisitedNeighbor(grid, cell)
		if next == nil {
			return
		}
		carve(grid, next)
	}
}

func firstUnvisitedNeighbor(grid *world.Grid, cell *world.Cell) *world.Cell {
	for _, dir := range world.CarveOrder() {
		if n := grid.GetCellRelative(cell, dir); n != nil && !n.Visited {
			return n
		}
	}
	return nil
}
