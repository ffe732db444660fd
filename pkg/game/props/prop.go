package props

import (
	"io"

	"github.com/google/uuid"

	"isgt/pkg/engine/geom"
	"isgt/pkg/engine/physics"
)

// Prop is a placed or candidate furniture instance
type Prop struct {
	ID       string
	Prefab   Prefab
	Position geom.Vector3
	Yaw      float64
	Bounds   geom.Bounds

	scene *physics.Scene
}

// NewProp returns an untransformed prop whose collider lives in scene. The
// ID is drawn from r so that replays produce the same IDs.
func NewProp(r io.Reader, prefab Prefab, scene *physics.Scene) (*Prop, error) {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Prop{
		ID:     id.String(),
		Prefab: prefab,
		scene:  scene,
	}, nil
}

// Category returns the category of the prop prefab
func (p *Prop) Category() Category {
	return p.Prefab.Category
}

// SetTransform moves the prop and recomputes its bounds. Position is the
// centre of the prop footprint at floor level.
func (p *Prop) SetTransform(position geom.Vector3, yaw float64) {
	p.Position = position
	p.Yaw = geom.NormalizeYaw(yaw)

	size := geom.RotatedSize(p.Prefab.Size, p.Yaw)
	half := geom.Mul(size, 0.5)
	p.Bounds = geom.NewBounds(
		geom.Vector3{X: position.X - half.X, Y: position.Y, Z: position.Z - half.Z},
		geom.Vector3{X: position.X + half.X, Y: position.Y + size.Y, Z: position.Z + half.Z},
	)
}

// Collider returns the collider of the prop at its current transform
func (p *Prop) Collider() physics.Collider {
	return physics.Collider{
		ID:     p.ID,
		Tag:    physics.Prop,
		Bounds: p.Bounds,
	}
}

// BoundingVolume returns the published collider volume of the prop
func (p *Prop) BoundingVolume() (geom.Bounds, bool) {
	if p.scene == nil {
		return geom.Bounds{}, false
	}
	c, ok := p.scene.Get(p.ID)
	if !ok {
		return geom.Bounds{}, false
	}
	return c.Bounds, true
}

// Rotation returns the orientation of the prop as a quaternion
func (p *Prop) Rotation() geom.Quaternion {
	return geom.YawQuaternion(p.Yaw)
}
