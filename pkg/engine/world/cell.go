// Package world provides the grid-based room shell primitives: cells, their
// wall states, the grid that owns them and the exterior wall sections.
package world

import (
	"fmt"

	"isgt/pkg/engine/geom"
)

// WallState is the state of one side of a cell
type WallState int

// Wall states. Exterior walls stay Closed after carving until the opening
// planner turns them into a Door or a Window.
const (
	Closed WallState = iota
	Open
	Door
	Window
)

// String returns the string representation of a wall state
func (s WallState) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	case Door:
		return "Door"
	case Window:
		return "Window"
	default:
		return "Unknown"
	}
}

// IsOpening returns true for doors and windows
func (s WallState) IsOpening() bool {
	return s == Door || s == Window
}

// WallSegment is the resolved geometry of one non-open side of a cell
type WallSegment struct {
	Direction Direction
	State     WallState
	Bounds    geom.Bounds
}

// Cell represents a single cell of the room grid.
type Cell struct {
	// Grid position
	X int
	Y int

	Visited bool

	walls [4]WallState

	// Walls holds the geometry of every side that is not Open.
	// Populated by Grid.ResolveWallGeometry.
	Walls []WallSegment
}

// NewCell creates a new unvisited cell with all four walls closed
func NewCell(x, y int) *Cell {
	return &Cell{X: x, Y: y}
}

// Name returns the "x:y" identifier of the cell
func (c *Cell) Name() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// Wall returns the state of the wall on the given side
func (c *Cell) Wall(dir Direction) WallState {
	if c == nil || !dir.IsValid() {
		return Closed
	}
	return c.walls[dir]
}

// SetWall sets the state of the wall on the given side
func (c *Cell) SetWall(dir Direction, state WallState) {
	if c == nil || !dir.IsValid() {
		return
	}
	c.walls[dir] = state
}

// IsOpen returns true if the wall on the given side has been carved open
func (c *Cell) IsOpen(dir Direction) bool {
	return c.Wall(dir) == Open
}

// OpenWalls returns the number of open sides
func (c *Cell) OpenWalls() int {
	n := 0
	for _, dir := range AllDirections() {
		if c.IsOpen(dir) {
			n++
		}
	}
	return n
}

// HasOpening reports whether any side of the cell is a door or a window
func (c *Cell) HasOpening() bool {
	for _, dir := range AllDirections() {
		if c.Wall(dir).IsOpening() {
			return true
		}
	}
	return false
}
