package radar

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

var ErrSuperluminal = errors.New("target velocity at or beyond light speed")

// Target is a scene input: a reflector at Range meters moving away at
// Velocity m/s. Derived series never live on the target; they are keyed
// by ID elsewhere and rebuilt on every change.
type Target struct {
	ID       string  `json:"id" yaml:"id"`
	Range    float64 `json:"range" yaml:"range"`
	Velocity float64 `json:"velocity" yaml:"velocity"`
	Color    string  `json:"color" yaml:"color"`
	Enabled  bool    `json:"enabled" yaml:"enabled"`
}

// NewTarget returns an enabled target with a fresh identity.
func NewTarget(rng, vel float64) Target {
	return Target{ID: uuid.NewString(), Range: rng, Velocity: vel, Enabled: true}
}

func (t Target) Validate() error {
	if t.Range < 0 {
		return fmt.Errorf("%w: target range %g m", ErrInvalidConfig, t.Range)
	}
	if math.Abs(t.Velocity) >= speedOfLight {
		return fmt.Errorf("%w: %g m/s", ErrSuperluminal, t.Velocity)
	}
	return nil
}
