package props

import (
	"math/rand"
	"os"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"

	"isgt/pkg/engine/geom"
	"isgt/pkg/game/config"
)

// Prefab is a template of placeable furniture. Size is the full extent of
// the prop at yaw 0, where it faces +z.
type Prefab struct {
	Name     string       `json:"name"`
	Category Category     `json:"category"`
	Size     geom.Vector3 `json:"size"`
	Icon     string       `json:"icon,omitempty"`
}

// Validate checks if a prefab can be placed
func (p Prefab) Validate() error {
	if p.Name == "" {
		return errors.New("prefab name is required").
			WithType(config.ErrTypeConfiguration)
	}
	if p.Size.X <= 0 || p.Size.Y <= 0 || p.Size.Z <= 0 {
		return errors.New("prefab size must be positive").
			WithType(config.ErrTypeConfiguration).
			WithTag("prefab", p.Name).
			WithTag("size", p.Size)
	}
	return nil
}

// Catalog is the immutable list of prefabs shared by every room of a run
type Catalog struct {
	Name    string   `json:"name"`
	Prefabs []Prefab `json:"prefabs"`
}

// LoadCatalog loads a catalog from a JSON file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading prefab catalog failed").
			WithType(config.ErrTypeConfiguration).
			WithTag("path", path).
			Wrap(err)
	}

	c, err := ParseCatalog(data)
	if err != nil {
		return nil, errors.New("loading prefab catalog failed").
			WithType(config.ErrTypeConfiguration).
			WithTag("path", path).
			Wrap(err)
	}
	return c, nil
}

// ParseCatalog decodes and validates a JSON catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.New("parsing prefab catalog failed").
			WithType(config.ErrTypeConfiguration).
			Wrap(err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the catalog is not empty and that every prefab is
// valid
func (c *Catalog) Validate() error {
	if c == nil || len(c.Prefabs) == 0 {
		return errors.New("prefab catalog is empty").
			WithType(config.ErrTypeConfiguration)
	}
	for _, p := range c.Prefabs {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Pick returns a random prefab
func (c *Catalog) Pick(rng *rand.Rand) Prefab {
	return c.Prefabs[rng.Intn(len(c.Prefabs))]
}

// ByCategory returns all prefabs of the given category
func (c *Catalog) ByCategory(category Category) []Prefab {
	var res []Prefab
	for _, p := range c.Prefabs {
		if p.Category == category {
			res = append(res, p)
		}
	}
	return res
}

// Restrict returns a catalog holding only the prefabs of the named
// categories. No name keeps the whole catalog. A restriction that leaves no
// prefab is a configuration error.
func (c *Catalog) Restrict(categories []string) (*Catalog, error) {
	if len(categories) == 0 {
		return c, nil
	}

	res := &Catalog{Name: c.Name}
	for _, name := range categories {
		category, err := ParseCategory(name)
		if err != nil {
			return nil, err
		}
		res.Prefabs = append(res.Prefabs, c.ByCategory(category)...)
	}
	if err := res.Validate(); err != nil {
		return nil, errors.New("no prefab left in the restricted catalog").
			WithType(config.ErrTypeConfiguration).
			WithTag("catalog", c.Name).
			WithTag("categories", strings.Join(categories, ",")).
			Wrap(err)
	}
	return res, nil
}

// DefaultCatalog returns the built-in living space prefabs
func DefaultCatalog() *Catalog {
	return &Catalog{
		Name: "default",
		Prefabs: []Prefab{
			{"Double Bed", Bed, geom.Vector3{X: 1.6, Y: 0.55, Z: 2.1}, "B"},
			{"Single Bed", Bed, geom.Vector3{X: 0.95, Y: 0.5, Z: 2.0}, "b"},
			{"Three Seat Sofa", Sofa, geom.Vector3{X: 2.1, Y: 0.85, Z: 0.9}, "S"},
			{"Armchair", Sofa, geom.Vector3{X: 0.9, Y: 0.9, Z: 0.85}, "s"},
			{"Fridge", Fridge, geom.Vector3{X: 0.7, Y: 1.85, Z: 0.7}, "F"},
			{"Dining Chair", Chair, geom.Vector3{X: 0.45, Y: 0.9, Z: 0.5}, "c"},
			{"Office Chair", Chair, geom.Vector3{X: 0.6, Y: 1.1, Z: 0.6}, "c"},
			{"Dining Table", Table, geom.Vector3{X: 1.4, Y: 0.75, Z: 0.85}, "T"},
			{"Coffee Table", Table, geom.Vector3{X: 1.0, Y: 0.45, Z: 0.6}, "t"},
			{"Wardrobe", Wardrobe, geom.Vector3{X: 1.2, Y: 2.0, Z: 0.6}, "W"},
			{"Floor Lamp", Lamp, geom.Vector3{X: 0.35, Y: 1.6, Z: 0.35}, "l"},
			{"Potted Plant", Plant, geom.Vector3{X: 0.5, Y: 1.1, Z: 0.5}, "p"},
			{"Storage Box", Generic, geom.Vector3{X: 0.6, Y: 0.4, Z: 0.4}, "g"},
		},
	}
}
