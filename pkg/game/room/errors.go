package room

import (
	"isgt/pkg/engine/physics"
	"isgt/pkg/engine/seed"
	"isgt/pkg/game/config"
	"isgt/pkg/game/props"
)

// Error types a room generation can report. Configuration and seed
// exhaustion errors abort the room. Missing geometry only discards the prop
// it belongs to. Shortfalls are logged and counted, never returned.
const (
	ErrTypeConfiguration      = config.ErrTypeConfiguration
	ErrTypeSeedExhaustion     = seed.ErrTypeSeedExhaustion
	ErrTypeMissingGeometry    = physics.ErrTypeMissingGeometry
	ErrTypePlacementShortfall = props.ErrTypePlacementShortfall

	// ErrTypeInvalidStage is returned when a stage runs before the stages
	// it depends on.
	ErrTypeInvalidStage = "invalid_stage"
)
