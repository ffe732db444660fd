// Package geom holds the small amount of 3D math the layout engine needs:
// vectors, axis-aligned bounds and overlap tests. Y is up; rooms lie on the
// x/z plane.
package geom

import (
	"math"
)

// Epsilon is the tolerance used by overlap and containment tests
const Epsilon = 1e-6

// EqualWithEpsilon reports whether a and b differ by at most epsilon
func EqualWithEpsilon(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// Clamp limits value to the range [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func Add(a Vector3, b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a Vector3, b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Mul(a Vector3, s float64) Vector3 {
	return Vector3{a.X * s, a.Y * s, a.Z * s}
}

// HorizontalDistance returns the distance between a and b on the x/z plane
func HorizontalDistance(a, b Vector3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

func (v Vector3) EqualWithEpsilon(o Vector3, epsilon float64) bool {
	return EqualWithEpsilon(v.X, o.X, epsilon) &&
		EqualWithEpsilon(v.Y, o.Y, epsilon) &&
		EqualWithEpsilon(v.Z, o.Z, epsilon)
}

// Quaternion is a rotation stored as [x, y, z, w]
type Quaternion [4]float64

// YawQuaternion returns the rotation of yaw degrees around the Y axis
func YawQuaternion(yaw float64) Quaternion {
	half := yaw * math.Pi / 360
	return Quaternion{0, math.Sin(half), 0, math.Cos(half)}
}

// NormalizeYaw wraps an angle in degrees into [0, 360)
func NormalizeYaw(yaw float64) float64 {
	yaw = math.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return yaw
}

// SnapYaw rounds an angle in degrees to the nearest multiple of 90
func SnapYaw(yaw float64) float64 {
	return NormalizeYaw(math.Round(yaw/90) * 90)
}
