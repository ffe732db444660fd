// Package devtools provides developer tools for inspecting generated rooms.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"isgt/pkg/engine/world"
	"isgt/pkg/game/props"
	"isgt/pkg/game/room"
)

// Plan symbols
const (
	SymbolCorner = '+'
	SymbolWall   = '#'
	SymbolDoor   = 'D'
	SymbolWindow = 'W'
	SymbolOpen   = ' '
	SymbolFloor  = '.'
)

// CategorySymbol returns the plan symbol of a prop category
func CategorySymbol(c props.Category) rune {
	switch c {
	case props.Bed:
		return 'b'
	case props.Sofa:
		return 's'
	case props.Fridge:
		return 'f'
	case props.Chair:
		return 'c'
	case props.Table:
		return 't'
	case props.Wardrobe:
		return 'w'
	case props.Lamp:
		return 'l'
	case props.Plant:
		return 'p'
	default:
		return 'g'
	}
}

func wallSymbol(s world.WallState) rune {
	switch s {
	case world.Open:
		return SymbolOpen
	case world.Door:
		return SymbolDoor
	case world.Window:
		return SymbolWindow
	default:
		return SymbolWall
	}
}

// Plan returns the top view of a layout, one rune row per line, with the
// front wall on top. Cells sit at odd coordinates and walls between them.
// A cell shows the symbol of the prop whose centre lies in it, or the number
// of props when there is more than one.
func Plan(l room.Layout) [][]rune {
	g := l.Grid
	w, h := 2*g.Width()+1, 2*g.Height()+1

	plan := make([][]rune, h)
	for i := range plan {
		plan[i] = make([]rune, w)
		for j := range plan[i] {
			plan[i][j] = SymbolCorner
		}
	}

	counts := make(map[*world.Cell][]*props.Prop)
	for _, p := range l.Props {
		x := int(p.Position.X / g.Pitch())
		y := int(p.Position.Z / g.Pitch())
		if c := g.GetCell(x, y); c != nil {
			counts[c] = append(counts[c], p)
		}
	}

	g.ForEachCell(func(x, y int, cell *world.Cell) {
		row := h - 2 - 2*y
		col := 2*x + 1

		switch n := len(counts[cell]); {
		case n == 0:
			plan[row][col] = SymbolFloor
		case n == 1:
			plan[row][col] = CategorySymbol(counts[cell][0].Category())
		case n < 10:
			plan[row][col] = rune('0' + n)
		default:
			plan[row][col] = '*'
		}

		plan[row-1][col] = wallSymbol(cell.Wall(world.Front))
		plan[row+1][col] = wallSymbol(cell.Wall(world.Back))
		plan[row][col-1] = wallSymbol(cell.Wall(world.Left))
		plan[row][col+1] = wallSymbol(cell.Wall(world.Right))
	})
	return plan
}

// DumpLayout writes a full debug dump of a layout: metadata, legend, plan
// and detailed opening, prop and empty region lists.
func DumpLayout(w io.Writer, l room.Layout) error {
	if l.Grid == nil {
		return errors.New("layout has no grid").WithTag("room", l.ID)
	}
	g := l.Grid

	fmt.Fprintln(w, "=== ROOM DUMP (layout, openings, props) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "room_id: %s\n", l.ID)
	fmt.Fprintf(w, "state: %s\n", l.State)
	fmt.Fprintf(w, "seeds: topology=%d openings=%d props=%d auxiliary=%d\n",
		l.Seeds.Topology, l.Seeds.Openings, l.Seeds.Props, l.Seeds.Auxiliary)
	fmt.Fprintf(w, "grid_width: %d\n", g.Width())
	fmt.Fprintf(w, "grid_height: %d\n", g.Height())
	fmt.Fprintf(w, "pitch: %.2f\n", g.Pitch())
	fmt.Fprintf(w, "wall_height: %.2f\n", g.WallHeight())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, x=right, y=front; world z = y*pitch)\n")
	fmt.Fprintf(w, "doors: %d\n", l.CountOpenings(world.Door))
	fmt.Fprintf(w, "windows: %d\n", l.CountOpenings(world.Window))
	fmt.Fprintf(w, "props: %d/%d\n", len(l.Props), l.PropTarget)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (plan symbols) ---")
	fmt.Fprintln(w, ". = empty floor  # = wall  D = door  W = window  + = corner  b s f c t w l p g = bed sofa fridge chair table wardrobe lamp plant generic  2-9 = prop count")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Plan (front wall on top) ---")
	for _, row := range Plan(l) {
		fmt.Fprintln(w, string(row))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Openings:")
	for _, o := range l.Openings {
		fmt.Fprintf(w, "  type: %s cell: %s direction: %s position: %.2f,%.2f,%.2f yaw: %.0f size: %.2fx%.2f\n",
			o.Type, o.Cell.Name(), o.Direction, o.Position.X, o.Position.Y, o.Position.Z, o.Yaw, o.Width, o.Height)
	}
	for _, s := range l.OpeningShortfalls {
		fmt.Fprintf(w, "  shortfall: %s on %s placed %d of %d\n", s.Type, s.Direction, s.Placed, s.Target)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Props:")
	byCategory := l.PropsByCategory()
	categories := make([]props.Category, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for _, c := range categories {
		for _, p := range byCategory[c] {
			fmt.Fprintf(w, "  category: %s prefab: %q position: %.2f,%.2f yaw: %.0f id: %s\n",
				c, p.Prefab.Name, p.Position.X, p.Position.Z, p.Yaw, p.ID)
		}
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Empty regions:")
	for _, b := range l.EmptyRegions {
		fmt.Fprintf(w, "  min: %.2f,%.2f max: %.2f,%.2f area: %.2f\n", b.Min.X, b.Min.Z, b.Max.X, b.Max.Z, b.Area())
	}
	return nil
}

// DumpLayoutToFile writes the dump of l to <dir>/<room-id>.txt and returns
// the absolute path of the file
func DumpLayoutToFile(dir string, l room.Layout) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(filepath.Join(dir, l.ID+".txt"))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLayout(f, l); err != nil {
		return "", err
	}
	return absPath, nil
}
