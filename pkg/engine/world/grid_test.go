package world

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// openAll opens every interior wall of g
func openAll(g *Grid) {
	g.ForEachCell(func(x, y int, cell *Cell) {
		for _, dir := range AllDirections() {
			g.OpenWall(cell, dir)
		}
	})
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%s.Opposite().Opposite() = %s, want %s", dir, dir.Opposite().Opposite(), dir)
		}
		dx, dy := dir.Delta()
		ox, oy := dir.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s delta (%d,%d) is not the inverse of its opposite (%d,%d)", dir, dx, dy, ox, oy)
		}
	}
	if Direction(7).IsValid() {
		t.Error("Direction(7).IsValid() = true, want false")
	}
}

func TestGrid_OpenWallIsReciprocal(t *testing.T) {
	g := NewGrid(3, 2, 1, 2.8, 0.1)
	a := g.GetCell(0, 0)
	if !g.OpenWall(a, Right) {
		t.Fatal("OpenWall(0:0, Right) = false, want true")
	}
	b := g.GetCell(1, 0)
	if !b.IsOpen(Left) {
		t.Errorf("1:0 Left = %s, want Open", b.Wall(Left))
	}
	if g.OpenWall(a, Back) {
		t.Error("OpenWall on an exterior side = true, want false")
	}
	if a.Wall(Back) != Closed {
		t.Errorf("0:0 Back = %s, want Closed", a.Wall(Back))
	}
}

func TestGrid_ValidateDetectsUnreachableCells(t *testing.T) {
	g := NewGrid(2, 2, 1, 2.8, 0.1)
	err := g.Validate()
	if err == nil {
		t.Fatal("Validate() on a closed grid = nil, want error")
	}
	if !errors.IsType(err, ErrTypeUnreachableCell) {
		t.Errorf("Validate() error type = %q, want %q", errors.Type(err), ErrTypeUnreachableCell)
	}

	openAll(g)
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() on an open grid = %v, want nil", err)
	}
}

func TestGrid_WallSections(t *testing.T) {
	g := NewGrid(4, 3, 1, 2.8, 0.1)
	g.BuildWallSections()

	want := map[Direction]int{Front: 4, Back: 4, Left: 3, Right: 3}
	total := 0
	for _, s := range g.Sections() {
		if s.Len() != want[s.Direction] {
			t.Errorf("section %s len = %d, want %d", s.Direction, s.Len(), want[s.Direction])
		}
		for i, c := range s.Cells {
			if !g.IsExterior(c, s.Direction) {
				t.Errorf("section %s cell %s does not face outside", s.Direction, c.Name())
			}
			if s.IndexOf(c) != i {
				t.Errorf("section %s IndexOf(%s) = %d, want %d", s.Direction, c.Name(), s.IndexOf(c), i)
			}
		}
		total += s.Len()
	}
	if total != 2*4+2*3 {
		t.Errorf("total section length = %d, want %d", total, 2*4+2*3)
	}
	if n := len(g.BoundaryCells()); n != 10 {
		t.Errorf("BoundaryCells() = %d, want 10", n)
	}
}

func TestGrid_WallBoundsSitOnCellEdges(t *testing.T) {
	g := NewGrid(2, 2, 2.5, 2.8, 0.2)
	c := g.GetCell(1, 1)

	front := g.WallBounds(c, Front)
	if front.Center().Z != 5 {
		t.Errorf("front wall centre z = %v, want 5", front.Center().Z)
	}
	left := g.WallBounds(c, Left)
	if left.Center().X != 2.5 {
		t.Errorf("left wall centre x = %v, want 2.5", left.Center().X)
	}
	if size := left.Size(); size.Z != 2.5 || size.Y != 2.8 {
		t.Errorf("left wall size = %+v, want z 2.5 and y 2.8", size)
	}
}

func TestGrid_ResolveWallGeometrySkipsOpenSides(t *testing.T) {
	g := NewGrid(2, 2, 1, 2.8, 0.1)
	openAll(g)
	g.GetCell(0, 0).SetWall(Back, Door)
	g.ResolveWallGeometry()

	c := g.GetCell(0, 0)
	if len(c.Walls) != 2 {
		t.Fatalf("0:0 has %d wall segments, want 2", len(c.Walls))
	}
	for _, w := range c.Walls {
		if w.State == Open {
			t.Errorf("segment %s is Open, want no geometry for open sides", w.Direction)
		}
	}
}

func TestCell_HasOpening(t *testing.T) {
	c := NewCell(0, 0)
	if c.HasOpening() {
		t.Fatal("HasOpening() on a closed cell = true, want false")
	}
	c.SetWall(Left, Open)
	if c.HasOpening() {
		t.Error("HasOpening() with an open side = true, want false")
	}
	c.SetWall(Back, Window)
	if !c.HasOpening() {
		t.Error("HasOpening() with a window = false, want true")
	}
}
