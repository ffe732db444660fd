package world

// WallSection is the ordered set of boundary cells exposing an exterior wall
// on one side of the room. Front/Back sections are ordered by x, Left/Right
// sections by y.
type WallSection struct {
	Direction Direction
	Cells     []*Cell
}

// Len returns the number of cells in the section
func (s *WallSection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Cells)
}

// IndexOf returns the position of c in the section, or -1
func (s *WallSection) IndexOf(c *Cell) int {
	for i, cell := range s.Cells {
		if cell == c {
			return i
		}
	}
	return -1
}

// Openings returns the indexes of cells whose exterior wall on this side is
// a door or a window
func (s *WallSection) Openings() []int {
	var idx []int
	for i, cell := range s.Cells {
		if cell.Wall(s.Direction).IsOpening() {
			idx = append(idx, i)
		}
	}
	return idx
}

// BuildWallSections partitions the boundary cells into the four exterior
// wall sections. A corner cell belongs to two sections.
func (g *Grid) BuildWallSections() {
	g.sections = make(map[Direction]*WallSection, 4)
	for _, dir := range AllDirections() {
		g.sections[dir] = &WallSection{Direction: dir}
	}

	for x := 0; x < g.width; x++ {
		g.sections[Back].Cells = append(g.sections[Back].Cells, g.cells[0][x])
		g.sections[Front].Cells = append(g.sections[Front].Cells, g.cells[g.height-1][x])
	}
	for y := 0; y < g.height; y++ {
		g.sections[Left].Cells = append(g.sections[Left].Cells, g.cells[y][0])
		g.sections[Right].Cells = append(g.sections[Right].Cells, g.cells[y][g.width-1])
	}
}

// Section returns the wall section for the given side, or nil before
// BuildWallSections has run
func (g *Grid) Section(dir Direction) *WallSection {
	if g.sections == nil {
		return nil
	}
	return g.sections[dir]
}

// Sections returns the four wall sections in Front, Back, Left, Right order
func (g *Grid) Sections() []*WallSection {
	if g.sections == nil {
		return nil
	}
	sections := make([]*WallSection, 0, 4)
	for _, dir := range AllDirections() {
		sections = append(sections, g.sections[dir])
	}
	return sections
}

// BoundaryCells returns the distinct cells that belong to at least one
// wall section
func (g *Grid) BoundaryCells() []*Cell {
	var cells []*Cell
	g.ForEachCell(func(x, y int, cell *Cell) {
		if g.IsOnPerimeter(x, y) {
			cells = append(cells, cell)
		}
	})
	return cells
}
