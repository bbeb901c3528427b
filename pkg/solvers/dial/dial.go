// Package dial solves the safe dial puzzle: a sequence of left and right
// rotations is folded over a ring of positions, counting how often the dial
// rests on zero and how often it passes through it.
package dial

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/aoc/pkg/alg/ring"
	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
)

const (
	// Day is the puzzle day served by this package.
	Day = 1
	// Title is the puzzle title.
	Title = "Secret Entrance"

	// DefaultSize is the number of positions on the dial.
	DefaultSize ring.Size = 100
	// DefaultStart is the position the dial starts at.
	DefaultStart ring.Position = 50
)

// Options configures the dial geometry.
type Options struct {
	Size  ring.Size
	Start ring.Position
}

// DefaultOptions returns the puzzle's dial geometry.
func DefaultOptions() Options {
	return Options{Size: DefaultSize, Start: DefaultStart}
}

// ParseMove parses "<L|R><distance>".
func ParseMove(line string) (ring.Move, error) {
	if line == "" {
		return ring.Move{}, puzzle.ErrUnknownDirection
	}

	dir, ok := ring.ParseDirection(line[0])
	if !ok {
		return ring.Move{}, fmt.Errorf("%w: %q", puzzle.ErrUnknownDirection, line[:1])
	}

	raw, err := puzzle.ParseUint(line[1:])
	if err != nil {
		return ring.Move{}, err
	}

	dist, err := ring.NewDistance(raw)
	if err != nil {
		return ring.Move{}, fmt.Errorf("%w: %w", puzzle.ErrInvalidNumber, err)
	}

	return ring.Move{Direction: dir, Distance: dist}, nil
}

// ParseMoves parses one move per non-blank line.
func ParseMoves(lines []string) ([]ring.Move, error) {
	moves := make([]ring.Move, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		move, err := ParseMove(line)
		if err != nil {
			return nil, puzzle.NewParseError(i+1, line, err)
		}

		moves = append(moves, move)
	}

	return moves, nil
}

// Solver implements puzzle.Solver for the dial puzzle.
type Solver struct {
	opts Options
}

// New creates a dial solver.
func New(opts Options) *Solver {
	return &Solver{opts: opts}
}

// Descriptor implements puzzle.Solver.
func (s *Solver) Descriptor() puzzle.Descriptor {
	return puzzle.Descriptor{Day: Day, Title: Title, Input: input.ModeTrimmed}
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(_ context.Context, lines []string) (puzzle.Solution, error) {
	moves, err := ParseMoves(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	tracker, err := Fold(s.opts, moves)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		Answers: []puzzle.Answer{
			{Part: 1, Label: "zero landings", Value: tracker.ZeroLandings()},
			{Part: 2, Label: "password", Value: tracker.Password()},
		},
		Records: len(moves),
	}, nil
}

// Fold applies moves in order to a fresh tracker.
func Fold(opts Options, moves []ring.Move) (*ring.Tracker, error) {
	tracker, err := ring.NewTracker(opts.Size, opts.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrInvariantViolation, err)
	}

	for _, move := range moves {
		tracker.ApplyMove(move)
	}

	return tracker, nil
}
