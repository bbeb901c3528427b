package ring

import "fmt"

// Step is the outcome of applying one Move.
type Step struct {
	// Position is the normalized position after the move.
	Position Position

	// Crossings is the number of zero-crossings attributed to this move, after
	// the land-on-zero adjustment.
	Crossings int64
}

// Tracker folds moves into a running position, a crossing count and a tally
// of moves that ended exactly on zero.
type Tracker struct {
	size         Size
	position     Position
	crossings    int64
	zeroLandings int64
}

// NewTracker creates a tracker on a ring of the given size, starting at start.
func NewTracker(size Size, start Position) (*Tracker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	if start < 0 || int64(start) >= int64(size) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidStart, start, size)
	}

	return &Tracker{size: size, position: start}, nil
}

// Size returns the ring size.
func (t *Tracker) Size() Size {
	return t.size
}

// Position returns the current position.
func (t *Tracker) Position() Position {
	return t.position
}

// Crossings returns the accumulated zero-crossing count.
func (t *Tracker) Crossings() int64 {
	return t.crossings
}

// ZeroLandings returns how many moves ended exactly on zero.
func (t *Tracker) ZeroLandings() int64 {
	return t.zeroLandings
}

// Password combines zero landings with zero crossings. The two are counted by
// different mechanisms, which is why a move that both crosses and lands on
// zero has its crossing contribution reduced by one.
func (t *Tracker) Password() int64 {
	return t.zeroLandings + t.crossings
}

// ApplyMove moves the dial and returns the new position with the crossings
// this move contributed.
func (t *Tracker) ApplyMove(m Move) Step {
	n := int64(t.size)
	effective := int64(m.Distance) % n
	from := t.position

	var candidate int64

	// A reduced move overshoots the ring by at most one lap.
	switch m.Direction {
	case Right:
		if effective >= n-int64(from) {
			candidate = effective - (n - int64(from))
		} else {
			candidate = int64(from) + effective
		}
	case Left:
		if effective > int64(from) {
			candidate = n - (effective - int64(from))
		} else {
			candidate = int64(from) - effective
		}
	default:
		panic(fmt.Sprintf("ring: unknown direction %d", m.Direction))
	}

	next := Position(candidate)

	crossings := Crossings(m.Direction, m.Distance, from, t.size)
	if crossings > 0 && next == 0 {
		crossings--
	}

	t.position = next
	t.crossings += crossings

	if next == 0 {
		t.zeroLandings++
	}

	return Step{Position: next, Crossings: crossings}
}
