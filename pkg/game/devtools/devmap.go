package devtools

import (
	"context"

	"isgt/pkg/engine/seed"
	"isgt/pkg/game/config"
	"isgt/pkg/game/props"
	"isgt/pkg/game/room"
)

// DevSeeds are the fixed seeds of the developer room
var DevSeeds = seed.Seeds{Topology: 1, Openings: 2, Props: 3, Auxiliary: 4}

// DevRoom generates a fixed 6x4 room with doors and windows on every side
// and a dense furnishing, for eyeballing the planners and the preview
func DevRoom(ctx context.Context) (*room.ClassicRoom, error) {
	cfg := config.Default()
	cfg.Width = 6
	cfg.Height = 4
	cfg.DoorRatio = 0.25
	cfg.WindowRatio = 0.5
	cfg.PropDensity = 60

	r := room.NewClassicRoom("dev-room", cfg, props.DefaultCatalog(), DevSeeds)
	if _, err := room.Generate(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}
