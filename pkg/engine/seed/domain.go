package seed

import (
	"fmt"
	"math/rand"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Domain identifies an independent random stream of a room.
type Domain int

const (
	Topology Domain = iota
	Openings
	Props
	Auxiliary
)

// Domains returns every domain in draw order.
func Domains() []Domain {
	return []Domain{Topology, Openings, Props, Auxiliary}
}

func (d Domain) String() string {
	switch d {
	case Topology:
		return "topology"
	case Openings:
		return "openings"
	case Props:
		return "props"
	case Auxiliary:
		return "auxiliary"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// Seeds holds one seed per domain.
type Seeds struct {
	Topology  int64 `json:"topology"`
	Openings  int64 `json:"openings"`
	Props     int64 `json:"props"`
	Auxiliary int64 `json:"auxiliary"`
}

// Draw takes one fresh seed per domain from seq.
func Draw(seq *Sequence) (Seeds, error) {
	return Seeds{}.Fill(seq)
}

// Fill replaces every zero seed with a fresh one from seq. Non-zero seeds are
// kept and reserved in seq; a non-zero seed that seq already handed out or
// reserved, including one repeated across domains, is an error.
func (s Seeds) Fill(seq *Sequence) (Seeds, error) {
	for _, d := range Domains() {
		if v := s.Get(d); v != 0 {
			if !seq.Reserve(v) {
				return Seeds{}, errors.New("seed is already in use").
					WithType(ErrTypeConfiguration).
					WithTag("domain", d.String()).
					WithTag("seed", v)
			}
			continue
		}

		v, err := seq.Next()
		if err != nil {
			return Seeds{}, err
		}
		s.set(d, v)
	}
	return s, nil
}

// Get returns the seed of domain d.
func (s Seeds) Get(d Domain) int64 {
	switch d {
	case Topology:
		return s.Topology
	case Openings:
		return s.Openings
	case Props:
		return s.Props
	case Auxiliary:
		return s.Auxiliary
	default:
		return 0
	}
}

func (s *Seeds) set(d Domain, v int64) {
	switch d {
	case Topology:
		s.Topology = v
	case Openings:
		s.Openings = v
	case Props:
		s.Props = v
	case Auxiliary:
		s.Auxiliary = v
	}
}

// Rand returns a fresh random stream for domain d. Each call restarts the
// stream from its seed.
func (s Seeds) Rand(d Domain) *rand.Rand {
	return rand.New(rand.NewSource(s.Get(d)))
}

// IsComplete reports whether every domain has a seed.
func (s Seeds) IsComplete() bool {
	for _, d := range Domains() {
		if s.Get(d) == 0 {
			return false
		}
	}
	return true
}
