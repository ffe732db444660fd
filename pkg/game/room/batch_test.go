package room

import (
	"context"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"

	"isgt/pkg/engine/seed"
	"isgt/pkg/game/config"
	"isgt/pkg/game/props"
)

func TestBatchGenerate(t *testing.T) {
	cfg := config.Default()
	cfg.RoomCount = 6
	cfg.Concurrency = 3
	cfg.MaxWidth = 5
	cfg.MaxHeight = 5

	b := Batch{
		Config:   cfg,
		Catalog:  props.DefaultCatalog(),
		Sequence: seed.NewSequenceFromSeed(7),
	}
	res, err := b.Generate(context.Background())
	require.NoError(t, err)
	require.Empty(t, res.Failures)
	require.Len(t, res.Rooms, 6)
	require.Len(t, res.Handoffs, 6)

	ids := make(map[string]bool)
	for i, r := range res.Rooms {
		require.Equal(t, DatabaseGenerated, r.State())
		require.Equal(t, r.ID, res.Handoffs[i].RoomID)
		require.False(t, ids[r.ID])
		ids[r.ID] = true
	}
}

func TestBatchIsolatesFailures(t *testing.T) {
	cfg := config.Default()
	cfg.RoomCount = 4
	cfg.Concurrency = 2
	cfg.SetSeeds(testSeeds)

	failing := ""
	b := Batch{
		Config:   cfg,
		Catalog:  props.DefaultCatalog(),
		Sequence: seed.NewSequenceFromSeed(3),
		OnRoom: func(ctx context.Context, r *ClassicRoom, h *Handoff) error {
			if r.Seeds == testSeeds {
				failing = r.ID
				return errors.New("sink unavailable").WithType("sink_error")
			}
			return nil
		},
	}

	res, err := b.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Rooms, 3)
	require.Len(t, res.Failures, 1)
	require.Equal(t, 0, res.Failures[0].Index)
	require.Equal(t, failing, res.Failures[0].RoomID)
	require.Equal(t, "sink_error", errors.Type(res.Failures[0].Err))
}

func TestBatchSeedsAreReproducible(t *testing.T) {
	cfg := config.Default()
	cfg.RoomCount = 3

	seedsOf := func() []seed.Seeds {
		b := Batch{Config: cfg, Catalog: props.DefaultCatalog(), Sequence: seed.NewSequenceFromSeed(99)}
		res, err := b.Generate(context.Background())
		require.NoError(t, err)

		var seeds []seed.Seeds
		for _, r := range res.Rooms {
			seeds = append(seeds, r.Seeds)
		}
		return seeds
	}
	require.Equal(t, seedsOf(), seedsOf())
}

func TestBatchRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Pitch = 0

	b := Batch{Config: cfg, Catalog: props.DefaultCatalog()}
	_, err := b.Generate(context.Background())
	require.True(t, errors.IsType(err, ErrTypeConfiguration))
}
