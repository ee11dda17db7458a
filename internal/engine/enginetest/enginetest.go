// Package enginetest provides deterministic collaborators for engine and
// scene tests.
package enginetest

import (
	"context"
	"errors"
	"time"

	"github.com/tatianab/forest-quest/internal/models"
)

// Random replays scripted draws. Once a script is exhausted it returns the
// fallback values, 0.99 for floats (never a success roll) and 0 for ints.
type Random struct {
	Floats []float64
	Ints   []int
}

func (r *Random) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0.99
	}
	f := r.Floats[0]
	r.Floats = r.Floats[1:]
	return f
}

// IntN returns the next scripted int, reduced modulo n.
func (r *Random) IntN(n int) int {
	if len(r.Ints) == 0 {
		return 0
	}
	i := r.Ints[0]
	r.Ints = r.Ints[1:]
	return i % n
}

// Clock is a manually advanced clock.
type Clock struct {
	T time.Time
}

func NewClock() *Clock {
	return &Clock{T: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time { return c.T }

func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// Narrator returns a canned rumor, or Err when set.
type Narrator struct {
	Line  string
	Err   error
	Calls int
}

func (n *Narrator) Rumor(_ context.Context, _ string, _ models.Guardian) (string, error) {
	n.Calls++
	if n.Err != nil {
		return "", n.Err
	}
	if n.Line == "" {
		return "", errors.New("no rumor scripted")
	}
	return n.Line, nil
}
