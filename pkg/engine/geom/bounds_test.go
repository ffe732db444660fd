package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundsOverlap(t *testing.T) {
	a := NewBounds(Vector3{0, 0, 0}, Vector3{2, 1, 2})

	tests := []struct {
		name  string
		other Bounds
		want  bool
	}{
		{
			name:  "intersecting",
			other: NewBounds(Vector3{1, 0, 1}, Vector3{3, 1, 3}),
			want:  true,
		},
		{
			name:  "touching face",
			other: NewBounds(Vector3{2, 0, 0}, Vector3{4, 1, 2}),
			want:  false,
		},
		{
			name:  "disjoint",
			other: NewBounds(Vector3{5, 0, 5}, Vector3{6, 1, 6}),
			want:  false,
		},
		{
			name:  "contained",
			other: NewBounds(Vector3{0.5, 0.2, 0.5}, Vector3{1, 0.5, 1}),
			want:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, a.Overlaps(test.other))
			require.Equal(t, test.want, test.other.Overlaps(a))
		})
	}
}

func TestBoundsQuadrants(t *testing.T) {
	b := NewBounds(Vector3{0, 0, 0}, Vector3{4, 3, 2})
	quads := b.Quadrants()

	area := 0.0
	for _, q := range quads {
		require.True(t, b.Contains(q))
		require.Equal(t, b.Min.Y, q.Min.Y)
		require.Equal(t, b.Max.Y, q.Max.Y)
		area += q.Area()
	}
	require.InDelta(t, b.Area(), area, Epsilon)
	require.False(t, quads[0].Overlaps(quads[3]))
}

func TestNewBoundsOrdersCorners(t *testing.T) {
	b := NewBounds(Vector3{3, 2, 1}, Vector3{0, 0, 0})
	require.Equal(t, Vector3{0, 0, 0}, b.Min)
	require.Equal(t, Vector3{3, 2, 1}, b.Max)
	require.Equal(t, Vector3{1.5, 1, 0.5}, b.Center())
}

func TestHorizontalDistanceToPoint(t *testing.T) {
	b := NewBounds(Vector3{0, 0, 0}, Vector3{1, 1, 1})
	require.Zero(t, b.HorizontalDistanceToPoint(Vector3{0.5, 10, 0.5}))
	require.InDelta(t, 2, b.HorizontalDistanceToPoint(Vector3{3, 0, 0.5}), Epsilon)
}

func TestRotatedSize(t *testing.T) {
	size := Vector3{2, 1, 0.5}
	require.Equal(t, size, RotatedSize(size, 0))
	require.Equal(t, size, RotatedSize(size, 180))
	require.Equal(t, Vector3{0.5, 1, 2}, RotatedSize(size, 90))
	require.Equal(t, Vector3{0.5, 1, 2}, RotatedSize(size, -90))
}

func TestYawHelpers(t *testing.T) {
	require.Equal(t, 270.0, NormalizeYaw(-90))
	require.Equal(t, 90.0, SnapYaw(100))
	require.Equal(t, 0.0, SnapYaw(359))

	q := YawQuaternion(90)
	require.InDelta(t, 0.7071, q[1], 1e-4)
	require.InDelta(t, 0.7071, q[3], 1e-4)
}
