// Package props fills the floor of a room with furniture.
package props

import (
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"isgt/pkg/game/config"
)

// Category is the kind of furniture a prefab belongs to
type Category int

// Furniture categories
const (
	Generic Category = iota
	Bed
	Sofa
	Fridge
	Chair
	Table
	Wardrobe
	Lamp
	Plant
)

var categoryNames = map[Category]string{
	Generic:  "generic",
	Bed:      "bed",
	Sofa:     "sofa",
	Fridge:   "fridge",
	Chair:    "chair",
	Table:    "table",
	Wardrobe: "wardrobe",
	Lamp:     "lamp",
	Plant:    "plant",
}

// AllCategories returns every category in declaration order
func AllCategories() []Category {
	return []Category{Generic, Bed, Sofa, Fridge, Chair, Table, Wardrobe, Lamp, Plant}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// RequiresWall reports whether props of this category are placed against a
// wall
func (c Category) RequiresWall() bool {
	switch c {
	case Bed, Sofa, Fridge:
		return true
	default:
		return false
	}
}

// FacesWall reports whether a wall-aligned prop faces the wall rather than
// away from it
func (c Category) FacesWall() bool {
	return c == Bed
}

// ParseCategory returns the category with the given name
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return Generic, errors.New("unknown prop category").
		WithType(config.ErrTypeConfiguration).
		WithTag("category", s)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
