package room

import (
	"context"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"isgt/pkg/engine/seed"
	"isgt/pkg/game/config"
	"isgt/pkg/game/props"
)

// Batch generates several independent rooms concurrently. Rooms only share
// the configuration and the catalog, which are read-only.
type Batch struct {
	Config   config.Config
	Catalog  *props.Catalog
	Sequence *seed.Sequence

	// Options are applied to every room
	Options []Option

	// OnRoom is called from the goroutine of each room that reached the
	// DatabaseGenerated state. An error marks the room as failed.
	OnRoom func(ctx context.Context, r *ClassicRoom, h *Handoff) error
}

// Failure is a room that did not complete
type Failure struct {
	Index  int
	RoomID string
	Seeds  seed.Seeds
	Err    error
}

// BatchResult holds the completed rooms in request order and the failures
type BatchResult struct {
	Rooms    []*ClassicRoom
	Handoffs []*Handoff
	Failures []Failure
}

// Generate creates Config.RoomCount rooms, at most Config.Concurrency at
// once. A failed room does not stop the others. The returned error is only
// set when ctx is done.
func (b *Batch) Generate(ctx context.Context) (BatchResult, error) {
	if err := b.Config.Validate(); err != nil {
		return BatchResult{}, err
	}
	if err := b.Catalog.Validate(); err != nil {
		return BatchResult{}, err
	}

	seq := b.Sequence
	if seq == nil {
		seq = seed.NewSequenceFromSeed(b.Config.Seed)
	}

	n := b.Config.RoomCount
	rooms := make([]*ClassicRoom, n)
	handoffs := make([]*Handoff, n)
	errs := make([]error, n)

	// Seeds are drawn up front so that room i always gets the same seeds
	// for a given sequence, whatever the scheduling.
	for i := 0; i < n; i++ {
		requested := seed.Seeds{}
		if i == 0 {
			requested = b.Config.Seeds()
		}
		seeds, err := requested.Fill(seq)
		rooms[i] = NewClassicRoom(uuid.NewString(), b.Config, b.Catalog, seeds, b.Options...)
		errs[i] = err
	}

	var g errgroup.Group
	g.SetLimit(b.Config.Concurrency)

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			continue
		}

		g.Go(func() error {
			handoffs[i], errs[i] = b.generate(ctx, rooms[i])
			return nil
		})
	}
	g.Wait()

	var res BatchResult
	for i, r := range rooms {
		if errs[i] != nil {
			instrumentRoomError(errs[i])
			logs.WithTag("room", r.ID).
				WithTag("index", i).
				WithTag("state", r.State().String()).
				Warn(errs[i])
			res.Failures = append(res.Failures, Failure{
				Index:  i,
				RoomID: r.ID,
				Seeds:  r.Seeds,
				Err:    errs[i],
			})
			continue
		}
		res.Rooms = append(res.Rooms, r)
		res.Handoffs = append(res.Handoffs, handoffs[i])
	}
	return res, ctx.Err()
}

func (b *Batch) generate(ctx context.Context, r *ClassicRoom) (h *Handoff, err error) {
	defer func(start time.Time) {
		instrumentRoomLatency(start, err)
	}(time.Now())

	if h, err = Generate(ctx, r); err != nil {
		return nil, err
	}

	logs.WithTag("room", r.ID).
		WithTag("width", h.Width).
		WithTag("height", h.Height).
		WithTag("openings", len(h.Openings)).
		WithTag("props", len(h.Props)).
		Info("room generated")

	if b.OnRoom != nil {
		if err = b.OnRoom(ctx, r, h); err != nil {
			return nil, err
		}
	}
	return h, nil
}
