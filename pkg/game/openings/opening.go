// Package openings turns exterior wall cells into doors and windows.
package openings

import (
	"isgt/pkg/engine/geom"
	"isgt/pkg/engine/world"
)

// Size is the geometry of an opening type
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Sill is the height of the bottom edge above the floor
	Sill float64 `json:"sill"`
}

var (
	DefaultDoorSize   = Size{Width: 0.9, Height: 2.1}
	DefaultWindowSize = Size{Width: 1.2, Height: 1.1, Sill: 0.9}
)

// Opening is a door or a window cut into the exterior wall of a cell
type Opening struct {
	Type      world.WallState
	Cell      *world.Cell
	Direction world.Direction

	// Index is the position of Cell within its wall section
	Index int

	Position  geom.Vector3
	Yaw       float64
	Width     float64
	Height    float64
	Thickness float64
}

// Bounds returns the volume the opening cuts out of its wall
func (o Opening) Bounds() geom.Bounds {
	size := geom.RotatedSize(geom.Vector3{X: o.Width, Y: o.Height, Z: o.Thickness}, o.Yaw)
	return geom.FromCenterExtents(o.Position, geom.Mul(size, 0.5))
}

// Rotation returns the orientation of the opening as a quaternion
func (o Opening) Rotation() geom.Quaternion {
	return geom.YawQuaternion(o.Yaw)
}

// resolve places an opening of the given size on the wall of cell facing dir
func resolve(grid *world.Grid, cell *world.Cell, dir world.Direction, t world.WallState, size Size) Opening {
	wall := grid.WallBounds(cell, dir)
	center := wall.Center()

	width := size.Width
	if width > grid.Pitch() {
		width = grid.Pitch()
	}
	height := size.Height
	if size.Sill+height > grid.WallHeight() {
		height = grid.WallHeight() - size.Sill
	}
	center.Y = size.Sill + height/2

	return Opening{
		Type:      t,
		Cell:      cell,
		Direction: dir,
		Position:  center,
		Yaw:       dir.Yaw(),
		Width:     width,
		Height:    height,
		Thickness: grid.WallThickness(),
	}
}
