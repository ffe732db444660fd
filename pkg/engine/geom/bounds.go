package geom

import (
	"math"
)

// Bounds is an axis-aligned box
type Bounds struct {
	Min Vector3 `json:"min"`
	Max Vector3 `json:"max"`
}

// NewBounds builds a box from two opposite corners in any order
func NewBounds(a, b Vector3) Bounds {
	return Bounds{
		Min: Vector3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vector3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// FromCenterExtents builds a box from its center and half-extents
func FromCenterExtents(center, extents Vector3) Bounds {
	return NewBounds(Sub(center, extents), Add(center, extents))
}

func (b Bounds) Center() Vector3 {
	return Mul(Add(b.Min, b.Max), 0.5)
}

func (b Bounds) Size() Vector3 {
	return Sub(b.Max, b.Min)
}

// Extents returns the half-size of the box
func (b Bounds) Extents() Vector3 {
	return Mul(b.Size(), 0.5)
}

// Area returns the footprint area on the x/z plane
func (b Bounds) Area() float64 {
	s := b.Size()
	return s.X * s.Z
}

// Overlaps reports whether the interiors of a and b intersect. Boxes that
// only touch on a face do not overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.Min.X >= o.Max.X-Epsilon || b.Max.X <= o.Min.X+Epsilon {
		return false
	}
	if b.Min.Y >= o.Max.Y-Epsilon || b.Max.Y <= o.Min.Y+Epsilon {
		return false
	}
	if b.Min.Z >= o.Max.Z-Epsilon || b.Max.Z <= o.Min.Z+Epsilon {
		return false
	}
	return true
}

// OverlapsHorizontally is Overlaps restricted to the x/z plane
func (b Bounds) OverlapsHorizontally(o Bounds) bool {
	if b.Min.X >= o.Max.X-Epsilon || b.Max.X <= o.Min.X+Epsilon {
		return false
	}
	if b.Min.Z >= o.Max.Z-Epsilon || b.Max.Z <= o.Min.Z+Epsilon {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies inside the box, faces included
func (b Bounds) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X-Epsilon && p.X <= b.Max.X+Epsilon &&
		p.Y >= b.Min.Y-Epsilon && p.Y <= b.Max.Y+Epsilon &&
		p.Z >= b.Min.Z-Epsilon && p.Z <= b.Max.Z+Epsilon
}

// Contains reports whether o lies entirely inside b
func (b Bounds) Contains(o Bounds) bool {
	return b.ContainsPoint(o.Min) && b.ContainsPoint(o.Max)
}

// Expand grows the box by d on every horizontal side. A negative d shrinks it.
func (b Bounds) Expand(d float64) Bounds {
	return Bounds{
		Min: Vector3{b.Min.X - d, b.Min.Y, b.Min.Z - d},
		Max: Vector3{b.Max.X + d, b.Max.Y, b.Max.Z + d},
	}
}

// Quadrants splits the box in x and z, keeping its full height. The order is
// (minX,minZ), (maxX,minZ), (minX,maxZ), (maxX,maxZ).
func (b Bounds) Quadrants() [4]Bounds {
	c := b.Center()
	return [4]Bounds{
		{Min: Vector3{b.Min.X, b.Min.Y, b.Min.Z}, Max: Vector3{c.X, b.Max.Y, c.Z}},
		{Min: Vector3{c.X, b.Min.Y, b.Min.Z}, Max: Vector3{b.Max.X, b.Max.Y, c.Z}},
		{Min: Vector3{b.Min.X, b.Min.Y, c.Z}, Max: Vector3{c.X, b.Max.Y, b.Max.Z}},
		{Min: Vector3{c.X, b.Min.Y, c.Z}, Max: Vector3{b.Max.X, b.Max.Y, b.Max.Z}},
	}
}

// HorizontalDistanceToPoint returns the distance on the x/z plane from p to
// the closest point of the box, 0 when p is inside
func (b Bounds) HorizontalDistanceToPoint(p Vector3) float64 {
	closest := Vector3{
		X: Clamp(p.X, b.Min.X, b.Max.X),
		Z: Clamp(p.Z, b.Min.Z, b.Max.Z),
	}
	return HorizontalDistance(Vector3{X: p.X, Z: p.Z}, closest)
}

// RotatedSize returns the axis-aligned size of a box of the given size after
// a yaw rotation snapped to 90 degrees
func RotatedSize(size Vector3, yaw float64) Vector3 {
	quarter := int(math.Round(NormalizeYaw(yaw)/90)) % 2
	if quarter == 1 {
		return Vector3{size.Z, size.Y, size.X}
	}
	return size
}
