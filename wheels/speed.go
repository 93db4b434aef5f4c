package wheels

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinSpeed     = 1
	MaxSpeed     = 100
	DefaultSpeed = 50
)

// ErrOutOfRange is returned when a speed or multiplier is outside [MinSpeed, MaxSpeed].
var ErrOutOfRange = errors.New("value out of range")

// Speed is a validated wheel duty value in [MinSpeed, MaxSpeed].
type Speed struct{ v uint8 }

// NewSpeed validates v and returns it as a Speed.
func NewSpeed(v uint8) (Speed, error) {
	if v < MinSpeed || v > MaxSpeed {
		return Speed{}, fmt.Errorf("speed %d: %w", v, ErrOutOfRange)
	}
	return Speed{v: v}, nil
}

// MustSpeed is like NewSpeed but panics on an invalid value.
func MustSpeed(v uint8) Speed {
	s, err := NewSpeed(v)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Speed) Value() uint8   { return s.v }
func (s Speed) String() string { return fmt.Sprintf("%d", s.v) }

// CounterRotationMultiplier scales the base speed to get the speed of
// the counter-rotating wheel during a turn.
//
// The value is a literal multiplier, not a percentage.
type CounterRotationMultiplier struct{ s Speed }

func NewCounterRotationMultiplier(v uint8) (CounterRotationMultiplier, error) {
	s, err := NewSpeed(v)
	if err != nil {
		return CounterRotationMultiplier{}, fmt.Errorf("counter rotation multiplier: %w", err)
	}
	return CounterRotationMultiplier{s: s}, nil
}

func (m CounterRotationMultiplier) Value() uint8   { return m.s.v }
func (m CounterRotationMultiplier) String() string { return fmt.Sprintf("x%d", m.s.v) }

// EffectiveSpeed returns base multiplied by m, clamped to [MinSpeed, MaxSpeed].
// A product that does not fit in 8 bits saturates to MaxSpeed.
func (m CounterRotationMultiplier) EffectiveSpeed(base Speed) Speed {
	p := uint(m.s.v) * uint(base.v)
	if p > math.MaxUint8 {
		return Speed{v: MaxSpeed}
	}
	return Speed{v: clamp(uint8(p), MinSpeed, MaxSpeed)}
}

func clamp(v, lo, hi uint8) uint8 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
