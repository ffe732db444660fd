package props

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"

	"isgt/pkg/engine/geom"
	"isgt/pkg/engine/physics"
	"isgt/pkg/game/config"
	"isgt/pkg/game/quadtree"
)

const wallHalf = 0.05

// testRoom returns a request for an empty size×size room with four walls
func testRoom(size float64, seed int64, target int) Request {
	scene := physics.NewScene()
	walls := []geom.Bounds{
		geom.NewBounds(geom.Vector3{Z: -wallHalf}, geom.Vector3{X: size, Y: 2.8, Z: wallHalf}),
		geom.NewBounds(geom.Vector3{Z: size - wallHalf}, geom.Vector3{X: size, Y: 2.8, Z: size + wallHalf}),
		geom.NewBounds(geom.Vector3{X: -wallHalf}, geom.Vector3{X: wallHalf, Y: 2.8, Z: size}),
		geom.NewBounds(geom.Vector3{X: size - wallHalf}, geom.Vector3{X: size + wallHalf, Y: 2.8, Z: size}),
	}
	for i, w := range walls {
		scene.Add(physics.Collider{ID: string(rune('a' + i)), Tag: physics.Wall, Bounds: w})
	}

	bounds := geom.NewBounds(geom.Vector3{}, geom.Vector3{X: size, Y: 2.8, Z: size})
	floor := bounds.Expand(-wallHalf)
	return Request{
		Rng:     rand.New(rand.NewSource(seed)),
		Scene:   scene,
		Tree:    quadtree.New(bounds, scene, quadtree.DetermineMaxDepth(bounds.Area()), quadtree.WithFootprint(floor)),
		Catalog: DefaultCatalog(),
		Floor:   floor,
		Target:  target,
	}
}

func TestTargetCount(t *testing.T) {
	require.Equal(t, 50, TargetCount(40, 10, 10, 2.5))
	require.Equal(t, 0, TargetCount(0, 10, 10, 2.5))
	require.Equal(t, 5, TargetCount(40, 3, 3, 2.5))
}

func TestPlaceRespectsTargetAndCollisions(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		req := testRoom(10, seed, TargetCount(40, 4, 4, 2.5))
		res, err := NewPlanner().Place(context.Background(), req)
		require.NoError(t, err)

		require.LessOrEqual(t, len(res.Props), res.Target)
		require.LessOrEqual(t, res.Draws, res.Target)
		require.Equal(t, res.Draws, len(res.Props)+res.Discarded+boolToInt(res.Terminated))
		require.NotEmpty(t, res.Props)

		for i, a := range res.Props {
			require.True(t, req.Floor.Contains(a.Bounds), "prop %s outside the floor", a.Prefab.Name)
			require.False(t, req.Scene.Overlaps(a.Bounds, physics.MaskStructure))
			require.Zero(t, math.Mod(a.Yaw, 90))

			volume, ok := a.BoundingVolume()
			require.True(t, ok)
			require.Equal(t, a.Bounds, volume)

			for _, b := range res.Props[i+1:] {
				require.False(t, a.Bounds.Overlaps(b.Bounds), "%s overlaps %s", a.Prefab.Name, b.Prefab.Name)
			}
		}
		require.Zero(t, req.Scene.Pending())
		require.Len(t, req.Scene.Colliders(physics.Mask(physics.Prop)), len(res.Props))
	}
}

func TestPlaceIsDeterministic(t *testing.T) {
	place := func() []*Prop {
		res, err := NewPlanner().Place(context.Background(), testRoom(8, 42, 20))
		require.NoError(t, err)
		return res.Props
	}

	a, b := place(), place()
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i].ID, b[i].ID)
		require.Equal(t, a[i].Prefab.Name, b[i].Prefab.Name)
		require.Equal(t, a[i].Bounds, b[i].Bounds)
	}
}

func TestPlaceTerminatesWhenTreeIsFull(t *testing.T) {
	req := testRoom(10, 1, 30)
	req.Tree = quadtree.New(req.Tree.Bounds(), req.Scene, 0)

	res, err := NewPlanner().Place(context.Background(), req)
	require.NoError(t, err)
	require.True(t, res.Terminated)
	require.Len(t, res.Props, 1)
	require.Equal(t, 29, res.Shortfall())
}

func TestPlaceStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewPlanner().Place(ctx, testRoom(10, 1, 10))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, res.Props)
}

func TestPlaceRejectsEmptyCatalog(t *testing.T) {
	req := testRoom(10, 1, 10)
	req.Catalog = &Catalog{}

	_, err := NewPlanner().Place(context.Background(), req)
	require.True(t, errors.IsType(err, config.ErrTypeConfiguration))
}

func TestWallYaw(t *testing.T) {
	req := testRoom(10, 1, 0)
	p := NewPlanner()

	// Close to the back wall (-z) a bed faces it and a sofa turns away.
	yaw, ok := p.wallYaw(req.Scene, geom.Vector3{X: 5, Z: 1}, Bed)
	require.True(t, ok)
	require.Equal(t, 180.0, yaw)

	yaw, ok = p.wallYaw(req.Scene, geom.Vector3{X: 5, Z: 1}, Sofa)
	require.True(t, ok)
	require.Equal(t, 0.0, yaw)

	// Close to the right wall (+x).
	yaw, ok = p.wallYaw(req.Scene, geom.Vector3{X: 9, Z: 5}, Fridge)
	require.True(t, ok)
	require.Equal(t, 270.0, yaw)

	_, ok = p.wallYaw(req.Scene, geom.Vector3{X: 5, Z: 5}, Bed)
	require.False(t, ok)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
