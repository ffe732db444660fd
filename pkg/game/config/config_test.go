package config

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"

	"isgt/pkg/engine/seed"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.True(t, c.RandomDimensions())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{
			name:   "width of one",
			mutate: func(c *Config) { c.Width = 1 },
		},
		{
			name:   "negative height",
			mutate: func(c *Config) { c.Height = -3 },
		},
		{
			name:   "random width with small bound",
			mutate: func(c *Config) { c.MaxWidth = 1 },
		},
		{
			name:   "zero pitch",
			mutate: func(c *Config) { c.Pitch = 0 },
		},
		{
			name:   "door ratio above one",
			mutate: func(c *Config) { c.DoorRatio = 1.5 },
		},
		{
			name:   "prop density above hundred",
			mutate: func(c *Config) { c.PropDensity = 101 },
		},
		{
			name:   "no placement attempts",
			mutate: func(c *Config) { c.MaxPlacementAttempts = 0 },
		},
		{
			name:   "no rooms",
			mutate: func(c *Config) { c.RoomCount = 0 },
		},
		{
			name: "repeated domain seed",
			mutate: func(c *Config) {
				c.SeedTopology = 5
				c.SeedProps = 5
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := Default()
			test.mutate(&c)

			err := c.Validate()
			require.Error(t, err)
			require.True(t, errors.IsType(err, ErrTypeConfiguration))
		})
	}
}

func TestValidateFixedDimensionsIgnoreBounds(t *testing.T) {
	c := Default()
	c.Width = 3
	c.Height = 3
	c.MaxWidth = 0
	c.MaxHeight = 0

	require.NoError(t, c.Validate())
	require.False(t, c.RandomDimensions())
}

func TestSeedsRoundTrip(t *testing.T) {
	c := Default()
	want := seed.Seeds{Topology: 1, Openings: 2, Props: 3}
	c.SetSeeds(want)

	require.Equal(t, want, c.Seeds())
	require.Equal(t, int64(3), c.SeedProps)
	require.NoError(t, c.Validate())
}
