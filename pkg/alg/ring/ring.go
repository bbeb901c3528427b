// Package ring tracks a position on a fixed-size circular dial. Positions live
// in [0, N) and wrap at the boundary; every move reports how many times it
// carried the dial through zero, including full laps within a single move.
package ring

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrInvalidSize      = errors.New("ring size must be positive")
	ErrInvalidStart     = errors.New("start position outside ring")
	ErrNegativeDistance = errors.New("distance must be non-negative")
)

// Size is the number of positions on the ring.
type Size int64

// Position is a normalized location on the ring, always in [0, Size).
type Position int64

// Distance is the unreduced length of a move. It may exceed the ring size.
type Distance int64

// NewDistance validates a raw move length.
func NewDistance(v int64) (Distance, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDistance, v)
	}

	return Distance(v), nil
}

// Direction is the sense of rotation of a move.
type Direction uint8

// Directions. The zero value is not a valid direction.
const (
	Left Direction = iota + 1
	Right
)

// ParseDirection maps the letters L and R to a Direction.
func ParseDirection(c byte) (Direction, bool) {
	switch c {
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	default:
		return 0, false
	}
}

// String returns the single-letter form used in puzzle input.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Move is one rotation of the dial.
type Move struct {
	Direction Direction
	Distance  Distance
}

// String returns the move in its input form, e.g. "R310".
func (m Move) String() string {
	return fmt.Sprintf("%s%d", m.Direction, m.Distance)
}

// Normalize wraps any integer into [0, n).
func Normalize(p int64, n Size) Position {
	r := p % int64(n)
	if r < 0 {
		r += int64(n)
	}

	return Position(r)
}

// Crossings returns floor((dist + correction) / n), where correction is the
// distance from the start position to the zero point in the direction of
// travel: n - from for Right, from for Left. The result counts full laps too.
// The sum is never formed, so distances up to math.MaxInt64 are safe.
func Crossings(dir Direction, dist Distance, from Position, n Size) int64 {
	size := int64(n)

	correction := int64(from)
	if dir == Right {
		correction = size - int64(from)
	}

	laps := int64(dist) / size
	if int64(dist)%size >= size-correction {
		laps++
	}

	return laps
}
