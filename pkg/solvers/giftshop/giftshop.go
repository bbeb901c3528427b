// Package giftshop solves the product ID puzzle: every ID inside the listed
// ranges is checked for a repeating decimal pattern, and the matching IDs are
// summed.
package giftshop

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/aoc/pkg/alg/interval"
	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/safeconv"
)

const (
	// Day is the puzzle day served by this package.
	Day = 2
	// Title is the puzzle title.
	Title = "Gift Shop"

	rangeSeparator  = ","
	boundsSeparator = "-"
)

// ParseRanges parses comma-separated "<start>-<end>" ranges. The list may be
// wrapped over several lines; empty entries are ignored.
func ParseRanges(lines []string) ([]interval.Interval, error) {
	joined := strings.Join(input.NonEmpty(lines), "")

	var ranges []interval.Interval

	for i, entry := range strings.Split(joined, rangeSeparator) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		iv, err := parseRange(entry)
		if err != nil {
			return nil, puzzle.NewParseError(i+1, entry, err)
		}

		ranges = append(ranges, iv)
	}

	return ranges, nil
}

func parseRange(entry string) (interval.Interval, error) {
	lo, hi, ok := strings.Cut(entry, boundsSeparator)
	if !ok {
		return interval.Interval{}, puzzle.ErrMalformedRange
	}

	start, err := puzzle.ParseUint(strings.TrimSpace(lo))
	if err != nil {
		return interval.Interval{}, err
	}

	end, err := puzzle.ParseUint(strings.TrimSpace(hi))
	if err != nil {
		return interval.Interval{}, err
	}

	iv, err := interval.New(start, end)
	if err != nil {
		return interval.Interval{}, fmt.Errorf("%w: %w", puzzle.ErrInvariantViolation, err)
	}

	return iv, nil
}

// IsDoubled reports whether the decimal form of id is some block written
// exactly twice, e.g. 6464 or 123123.
func IsDoubled(id int64) bool {
	s := strconv.FormatInt(id, 10)
	if len(s)%2 != 0 {
		return false
	}

	half := len(s) / 2

	return s[:half] == s[half:]
}

// IsRepeated reports whether the decimal form of id is some block written at
// least twice, e.g. 1111, 121212 or 824824824.
func IsRepeated(id int64) bool {
	s := strconv.FormatInt(id, 10)

	for width := 1; width <= len(s)/2; width++ {
		if len(s)%width != 0 {
			continue
		}

		if strings.Repeat(s[:width], len(s)/width) == s {
			return true
		}
	}

	return false
}

// SumMatching adds up every ID inside the ranges for which match holds.
// Overlapping ranges are summed independently. A sum beyond int64 is an
// invariant violation.
func SumMatching(ranges []interval.Interval, match func(int64) bool) (int64, error) {
	var sum int64

	for _, iv := range ranges {
		for id := iv.Start(); ; id++ {
			if match(id) {
				var ok bool

				sum, ok = safeconv.Add(sum, id)
				if !ok {
					return 0, puzzle.Invariantf("sum of matching IDs overflows int64 at %d", id)
				}
			}

			// End may be math.MaxInt64, so stop before incrementing past it.
			if id == iv.End() {
				break
			}
		}
	}

	return sum, nil
}

// Solver implements puzzle.Solver for the gift shop puzzle.
type Solver struct{}

// New creates a gift shop solver.
func New() *Solver {
	return &Solver{}
}

// Descriptor implements puzzle.Solver.
func (s *Solver) Descriptor() puzzle.Descriptor {
	return puzzle.Descriptor{Day: Day, Title: Title, Input: input.ModeTrimmed}
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(_ context.Context, lines []string) (puzzle.Solution, error) {
	ranges, err := ParseRanges(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	doubled, err := SumMatching(ranges, IsDoubled)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("part 1: %w", err)
	}

	repeated, err := SumMatching(ranges, IsRepeated)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("part 2: %w", err)
	}

	return puzzle.Solution{
		Answers: []puzzle.Answer{
			{Part: 1, Label: "doubled IDs", Value: doubled},
			{Part: 2, Label: "repeated IDs", Value: repeated},
		},
		Records: len(ranges),
	}, nil
}
