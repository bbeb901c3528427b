// Package cafeteria solves the ingredient freshness puzzle on top of the
// interval merge engine: fresh ID ranges are folded into a disjoint set that
// answers membership and coverage queries.
package cafeteria

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/aoc/pkg/alg/interval"
	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/safeconv"
)

const (
	// Day is the puzzle day served by this package.
	Day = 5
	// Title is the puzzle title.
	Title = "Cafeteria"

	boundsSeparator = "-"
)

// Inventory is the parsed database: fresh ID ranges and available IDs.
type Inventory struct {
	Ranges []interval.Interval
	IDs    []int64
}

// Records returns the number of parsed records.
func (inv Inventory) Records() int {
	return len(inv.Ranges) + len(inv.IDs)
}

// ParseInventory parses "<start>-<end>" ranges and bare IDs. Blank lines
// separate sections and are otherwise ignored.
func ParseInventory(lines []string) (Inventory, error) {
	var inv Inventory

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if lo, hi, ok := strings.Cut(line, boundsSeparator); ok {
			iv, err := parseRange(lo, hi)
			if err != nil {
				return Inventory{}, puzzle.NewParseError(i+1, line, err)
			}

			inv.Ranges = append(inv.Ranges, iv)

			continue
		}

		id, err := puzzle.ParseUint(line)
		if err != nil {
			return Inventory{}, puzzle.NewParseError(i+1, line, err)
		}

		inv.IDs = append(inv.IDs, id)
	}

	return inv, nil
}

func parseRange(lo, hi string) (interval.Interval, error) {
	start, err := puzzle.ParseUint(strings.TrimSpace(lo))
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: %w", puzzle.ErrMalformedRange, err)
	}

	end, err := puzzle.ParseUint(strings.TrimSpace(hi))
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: %w", puzzle.ErrMalformedRange, err)
	}

	iv, err := interval.New(start, end)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: %w", puzzle.ErrInvariantViolation, err)
	}

	return iv, nil
}

// Fresh folds the ranges into a disjoint set.
func Fresh(ranges []interval.Interval) (*interval.Set, error) {
	if len(ranges) == 0 {
		return nil, puzzle.Emptyf("no fresh ID ranges")
	}

	return interval.NewSet(ranges...), nil
}

// CountFresh returns how many of ids fall inside the set.
func CountFresh(set *interval.Set, ids []int64) int64 {
	var n int64

	for _, id := range ids {
		if set.Contains(id) {
			n++
		}
	}

	return n
}

// Coverage returns the number of distinct fresh IDs as an answer value.
func Coverage(set *interval.Set) (int64, error) {
	total := set.TotalCoverage()

	coverage, ok := safeconv.Uint64ToInt64(total)
	if !ok {
		return 0, puzzle.Invariantf("coverage %d overflows int64", total)
	}

	return coverage, nil
}

// Solver implements puzzle.Solver for the freshness puzzle.
type Solver struct{}

// New creates a freshness solver.
func New() *Solver {
	return &Solver{}
}

// Descriptor implements puzzle.Solver.
func (s *Solver) Descriptor() puzzle.Descriptor {
	return puzzle.Descriptor{Day: Day, Title: Title, Input: input.ModeTrimmed}
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(_ context.Context, lines []string) (puzzle.Solution, error) {
	inv, err := ParseInventory(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	set, err := Fresh(inv.Ranges)
	if err != nil {
		return puzzle.Solution{}, err
	}

	coverage, err := Coverage(set)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		Answers: []puzzle.Answer{
			{Part: 1, Label: "fresh available IDs", Value: CountFresh(set, inv.IDs)},
			{Part: 2, Label: "fresh IDs", Value: coverage},
		},
		Records: inv.Records(),
	}, nil
}
