package room

import (
	"math/rand"
	"os"
	"path/filepath"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"

	"isgt/pkg/engine/geom"
	"isgt/pkg/engine/seed"
	"isgt/pkg/engine/world"
)

// MaxDoorOpenness is the widest angle in degrees a door is left open at
const MaxDoorOpenness = 90

// BoundingBox is a pixel-space box filled in by the photography pipeline
type BoundingBox struct {
	Origin    [2]float64 `json:"origin"`
	Dimension [2]float64 `json:"dimension"`
}

// OpeningRecord describes one opening. The camera-relative fields are left
// zero for the photography pipeline to fill in.
type OpeningRecord struct {
	Type      string          `json:"type"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	Thickness float64         `json:"thickness"`
	Position  geom.Vector3    `json:"position"`
	Rotation  geom.Quaternion `json:"rotation"`
	Openness  float64         `json:"openness"`
	Cell      string          `json:"cell"`
	Direction string          `json:"direction"`

	DistanceToCamera float64     `json:"distance_to_camera"`
	VisibilityRatio  float64     `json:"visibility_ratio"`
	BoundingBox      BoundingBox `json:"bounding_box"`
}

// WallRecord is the state of one side of a cell
type WallRecord struct {
	Cell      string       `json:"cell"`
	Direction string       `json:"direction"`
	State     string       `json:"state"`
	Bounds    *geom.Bounds `json:"bounds,omitempty"`
}

// PropRecord is a committed prop placement
type PropRecord struct {
	ID       string          `json:"id"`
	Prefab   string          `json:"prefab"`
	Category string          `json:"category"`
	Position geom.Vector3    `json:"position"`
	Yaw      float64         `json:"yaw"`
	Rotation geom.Quaternion `json:"rotation"`
	Size     geom.Vector3    `json:"size"`
	Bounds   geom.Bounds     `json:"bounds"`
}

// Handoff is everything the photography pipeline needs about a room
type Handoff struct {
	RoomID       string          `json:"room_id"`
	Seeds        seed.Seeds      `json:"seeds"`
	Width        int             `json:"width"`
	Height       int             `json:"height"`
	Pitch        float64         `json:"pitch"`
	WallHeight   float64         `json:"wall_height"`
	Bounds       geom.Bounds     `json:"bounds"`
	Walls        []WallRecord    `json:"walls"`
	Openings     []OpeningRecord `json:"openings"`
	Props        []PropRecord    `json:"props"`
	PropTarget   int             `json:"prop_target"`
	EmptyRegions []geom.Bounds   `json:"empty_regions"`
	State        string          `json:"state"`
}

// NewHandoff builds the handoff of a layout. Door openness is drawn from
// rng.
func NewHandoff(l Layout, rng *rand.Rand) *Handoff {
	h := &Handoff{
		RoomID:       l.ID,
		Seeds:        l.Seeds,
		Width:        l.Grid.Width(),
		Height:       l.Grid.Height(),
		Pitch:        l.Grid.Pitch(),
		WallHeight:   l.Grid.WallHeight(),
		Bounds:       l.Grid.Bounds(),
		PropTarget:   l.PropTarget,
		EmptyRegions: l.EmptyRegions,
		State:        l.State.String(),
	}

	l.Grid.ForEachCell(func(x, y int, cell *world.Cell) {
		for _, dir := range world.AllDirections() {
			rec := WallRecord{
				Cell:      cell.Name(),
				Direction: dir.String(),
				State:     cell.Wall(dir).String(),
			}
			if cell.Wall(dir) != world.Open {
				b := l.Grid.WallBounds(cell, dir)
				rec.Bounds = &b
			}
			h.Walls = append(h.Walls, rec)
		}
	})

	for _, o := range l.Openings {
		openness := 0.0
		if o.Type == world.Door {
			openness = rng.Float64() * MaxDoorOpenness
		}
		h.Openings = append(h.Openings, OpeningRecord{
			Type:      o.Type.String(),
			Width:     o.Width,
			Height:    o.Height,
			Thickness: o.Thickness,
			Position:  o.Position,
			Rotation:  o.Rotation(),
			Openness:  openness,
			Cell:      o.Cell.Name(),
			Direction: o.Direction.String(),
		})
	}

	for _, p := range l.Props {
		h.Props = append(h.Props, PropRecord{
			ID:       p.ID,
			Prefab:   p.Prefab.Name,
			Category: p.Category().String(),
			Position: p.Position,
			Yaw:      p.Yaw,
			Rotation: p.Rotation(),
			Size:     p.Prefab.Size,
			Bounds:   p.Bounds,
		})
	}
	return h
}

// WriteHandoff writes h to <dir>/<room-id>.json and returns the file path
func WriteHandoff(dir string, h *Handoff) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.New("creating output directory failed").
			WithTag("dir", dir).
			Wrap(err)
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return "", errors.New("encoding handoff failed").
			WithTag("room", h.RoomID).
			Wrap(err)
	}

	path := filepath.Join(dir, h.RoomID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.New("writing handoff failed").
			WithTag("path", path).
			Wrap(err)
	}
	return path, nil
}

// ReadHandoff decodes a handoff file
func ReadHandoff(path string) (*Handoff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading handoff failed").
			WithTag("path", path).
			Wrap(err)
	}

	var h Handoff
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, errors.New("decoding handoff failed").
			WithTag("path", path).
			Wrap(err)
	}
	return &h, nil
}
