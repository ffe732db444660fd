// Package generator tests maze carving: connectivity, wall states per cell
// position, wall sections and dimension selection.
package generator

import (
	"math/rand"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"isgt/pkg/engine/world"
	"isgt/pkg/game/config"
)

// countReachableCells returns the number of cells reachable from start
// through open walls.
func countReachableCells(grid *world.Grid, start *world.Cell) int {
	if start == nil {
		return 0
	}
	visited := make(map[*world.Cell]bool)
	queue := []*world.Cell{start}
	visited[start] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, dir := range world.AllDirections() {
			if !c.IsOpen(dir) {
				continue
			}
			n := grid.GetCellRelative(c, dir)
			if n != nil && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func generate(t *testing.T, width, height int) *world.Grid {
	t.Helper()
	grid, err := DefaultGenerator.Generate(rand.New(rand.NewSource(1)), Params{
		Width:         width,
		Height:        height,
		Pitch:         2.5,
		WallHeight:    2.8,
		WallThickness: 0.1,
	})
	if err != nil {
		t.Fatalf("Generate(%d, %d) error = %v", width, height, err)
	}
	return grid
}

func TestMazeCarve_AllCellsReachable(t *testing.T) {
	for w := 2; w <= 9; w++ {
		for h := 2; h <= 9; h++ {
			grid := generate(t, w, h)
			reachable := countReachableCells(grid, grid.GetCell(0, 0))
			if reachable != w*h {
				t.Errorf("%dx%d: reachable cells = %d, want %d", w, h, reachable, w*h)
			}
		}
	}
}

func TestMazeCarve_OpenWallsByPosition(t *testing.T) {
	grid := generate(t, 4, 3)
	grid.ForEachCell(func(x, y int, cell *world.Cell) {
		if !cell.Visited {
			t.Errorf("cell %s was never visited", cell.Name())
		}
		want := 4
		if x == 0 || x == grid.Width()-1 {
			want--
		}
		if y == 0 || y == grid.Height()-1 {
			want--
		}
		if cell.OpenWalls() != want {
			t.Errorf("cell %s open walls = %d, want %d", cell.Name(), cell.OpenWalls(), want)
		}
		for _, dir := range world.AllDirections() {
			if grid.IsExterior(cell, dir) && cell.Wall(dir) != world.Closed {
				t.Errorf("cell %s exterior %s = %s, want Closed", cell.Name(), dir, cell.Wall(dir))
			}
		}
	})
}

func TestMazeCarve_WallSections3x3(t *testing.T) {
	grid := generate(t, 3, 3)

	total := 0
	for _, s := range grid.Sections() {
		if s.Len() == 0 {
			t.Errorf("section %s is empty", s.Direction)
		}
		total += s.Len()
	}
	if total != 12 {
		t.Errorf("total exterior cell sides = %d, want 12", total)
	}
	if n := len(grid.BoundaryCells()); n != 8 {
		t.Errorf("boundary cells = %d, want 8", n)
	}
}

func TestMazeCarve_IsDeterministic(t *testing.T) {
	a := generate(t, 5, 4)
	b := generate(t, 5, 4)
	a.ForEachCell(func(x, y int, cell *world.Cell) {
		other := b.GetCell(x, y)
		for _, dir := range world.AllDirections() {
			if cell.Wall(dir) != other.Wall(dir) {
				t.Errorf("cell %s %s = %s, want %s", cell.Name(), dir, other.Wall(dir), cell.Wall(dir))
			}
		}
	})
}

func TestMazeCarve_RejectsSmallDimensions(t *testing.T) {
	for _, p := range []Params{
		{Width: 1, Height: 3, Pitch: 1},
		{Width: 3, Height: 1, Pitch: 1},
		{Width: 0, Height: 0, Pitch: 1},
		{Width: 3, Height: 3, Pitch: 0},
	} {
		_, err := MazeCarve.Generate(rand.New(rand.NewSource(1)), p)
		if err == nil {
			t.Errorf("Generate(%+v) error = nil, want configuration error", p)
			continue
		}
		if !errors.IsType(err, config.ErrTypeConfiguration) {
			t.Errorf("Generate(%+v) error type = %q, want %q", p, errors.Type(err), config.ErrTypeConfiguration)
		}
	}
}

func TestRandomDimensions_StayInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	seenMax := false
	for i := 0; i < 500; i++ {
		w, h := RandomDimensions(rng, 5, 3)
		if w < 2 || w > 5 {
			t.Fatalf("width = %d, want in [2, 5]", w)
		}
		if h < 2 || h > 3 {
			t.Fatalf("height = %d, want in [2, 3]", h)
		}
		if w == 5 {
			seenMax = true
		}
	}
	if !seenMax {
		t.Error("width never reached its upper bound")
	}
}

func TestParamsFromConfig(t *testing.T) {
	c := config.Default()
	c.Width = 3
	p := ParamsFromConfig(rand.New(rand.NewSource(3)), c)
	if p.Width != 3 {
		t.Errorf("Width = %d, want 3", p.Width)
	}
	if p.Height < 2 || p.Height > c.MaxHeight {
		t.Errorf("Height = %d, want in [2, %d]", p.Height, c.MaxHeight)
	}
	if p.Pitch != c.Pitch {
		t.Errorf("Pitch = %v, want %v", p.Pitch, c.Pitch)
	}
}
