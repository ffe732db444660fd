package physics

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"

	"isgt/pkg/engine/geom"
)

func box(minX, minZ, maxX, maxZ float64) geom.Bounds {
	return geom.NewBounds(geom.Vector3{X: minX, Z: minZ}, geom.Vector3{X: maxX, Y: 1, Z: maxZ})
}

func TestSceneStagedCollidersAreInvisibleUntilSync(t *testing.T) {
	s := NewScene()
	s.Stage(Collider{ID: "chair", Tag: Prop, Bounds: box(0, 0, 1, 1)})

	require.Equal(t, 1, s.Pending())
	require.False(t, s.Overlaps(box(0.5, 0.5, 2, 2), MaskAll))

	_, err := s.Query("chair", MaskAll)
	require.True(t, errors.IsType(err, ErrTypeUnsyncedQuery))

	require.Equal(t, 1, s.Sync())
	require.Zero(t, s.Pending())
	require.True(t, s.Overlaps(box(0.5, 0.5, 2, 2), MaskAll))
}

func TestSceneQueryExcludesSelf(t *testing.T) {
	s := NewScene()
	s.Add(Collider{ID: "wall", Tag: Wall, Bounds: box(0, 0, 10, 0.1)})
	s.Add(Collider{ID: "bed", Tag: Prop, Bounds: box(0, 5, 2, 7)})

	s.Stage(Collider{ID: "probe", Tag: Prop, Bounds: box(1, 0.05, 2, 1)})
	s.Sync()

	hits, err := s.Query("probe", MaskObstacles)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "wall", hits[0].ID)

	hits, err = s.Query("probe", Mask(Prop))
	require.NoError(t, err)
	require.Empty(t, hits)

	_, err = s.Query("missing", MaskAll)
	require.True(t, errors.IsType(err, ErrTypeMissingGeometry))
}

func TestSceneMaskFiltersTags(t *testing.T) {
	s := NewScene()
	s.Add(Collider{ID: "door", Tag: Door, Bounds: box(0, 0, 1, 1)})
	s.Add(Collider{ID: "lamp", Tag: Prop, Bounds: box(0, 0, 1, 1)})

	query := box(0.2, 0.2, 0.8, 0.8)
	require.Len(t, s.OverlapAll(query, MaskStructure), 1)
	require.Len(t, s.OverlapAll(query, Mask(Prop)), 1)
	require.Len(t, s.OverlapAll(query, MaskAll), 2)
	require.False(t, s.Overlaps(query, Mask(Window)))
}

func TestSceneNearest(t *testing.T) {
	s := NewScene()
	s.Add(Collider{ID: "left", Tag: Wall, Bounds: box(-0.05, 0, 0.05, 10)})
	s.Add(Collider{ID: "right", Tag: Wall, Bounds: box(9.95, 0, 10.05, 10)})

	c, d, ok := s.Nearest(geom.Vector3{X: 2, Z: 5}, MaskStructure, 3)
	require.True(t, ok)
	require.Equal(t, "left", c.ID)
	require.InDelta(t, 1.95, d, 1e-9)

	_, _, ok = s.Nearest(geom.Vector3{X: 5, Z: 5}, MaskStructure, 3)
	require.False(t, ok)
}

func TestSceneRemove(t *testing.T) {
	s := NewScene()
	s.Add(Collider{ID: "a", Tag: Prop, Bounds: box(0, 0, 1, 1)})
	s.Stage(Collider{ID: "b", Tag: Prop, Bounds: box(0, 0, 1, 1)})

	s.Remove("a")
	s.Remove("b")
	require.Zero(t, s.Len())
	require.Zero(t, s.Pending())
	require.Empty(t, s.Colliders(MaskAll))
}
