// Package seed produces the reproducible seeds a room is generated from.
//
// A Sequence hands out pairwise-distinct non-zero seeds. Each room draws one
// seed per generation domain so that replaying the same Seeds rebuilds the
// same room.
package seed

import (
	"math/rand"
	"sync"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/zyedidia/generic/mapset"
)

const (
	// ErrTypeSeedExhaustion is returned when no fresh seed could be drawn.
	ErrTypeSeedExhaustion = "seed_exhaustion"

	// ErrTypeConfiguration is returned when explicitly requested seeds
	// collide with each other or with seeds already handed out.
	ErrTypeConfiguration = "configuration_error"

	// MaxRedraws is the number of consecutive collisions tolerated by Next.
	MaxRedraws = 16
)

// Sequence is a stream of distinct seeds. It is safe for concurrent use.
type Sequence struct {
	mu   sync.Mutex
	src  rand.Source
	used mapset.Set[int64]
}

// NewSequence returns a sequence drawing from src.
func NewSequence(src rand.Source) *Sequence {
	return &Sequence{
		src:  src,
		used: mapset.New[int64](),
	}
}

// NewSequenceFromSeed returns a sequence seeded with s. A zero seed uses the
// current time.
func NewSequenceFromSeed(s int64) *Sequence {
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return NewSequence(rand.NewSource(s))
}

// Next returns a seed that has not been returned before by this sequence.
// Zero is never returned since it means "auto" to callers.
func (s *Sequence) Next() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i <= MaxRedraws; i++ {
		v := s.src.Int63()
		if v == 0 || s.used.Has(v) {
			continue
		}
		s.used.Put(v)
		return v, nil
	}

	return 0, errors.New("seed sequence exhausted").
		WithType(ErrTypeSeedExhaustion).
		WithTag("used", s.used.Size()).
		WithTag("redraws", MaxRedraws)
}

// Reserve marks v as used so that Next never returns it. It returns false
// if v was already used.
func (s *Sequence) Reserve(v int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.used.Has(v) {
		return false
	}
	s.used.Put(v)
	return true
}

// Used returns how many seeds the sequence has handed out or reserved.
func (s *Sequence) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used.Size()
}
