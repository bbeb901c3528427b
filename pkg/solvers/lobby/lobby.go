// Package lobby solves the battery bank puzzle: from each bank of digits, pick
// a fixed number of batteries in order so that the resulting number is as
// large as possible, then sum the results.
package lobby

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/safeconv"
)

const (
	// Day is the puzzle day served by this package.
	Day = 3
	// Title is the puzzle title.
	Title = "Lobby"

	// PairSize is the number of batteries switched on in part one.
	PairSize = 2
	// OverrideSize is the number of batteries switched on in part two.
	OverrideSize = 12
)

// Bank is one row of battery joltage ratings, each in 1..9.
type Bank []uint8

// ParseBank parses a line of digits 1 through 9.
func ParseBank(line string) (Bank, error) {
	bank := make(Bank, 0, len(line))

	for i := range len(line) {
		ch := line[i]
		if ch < '1' || ch > '9' {
			return nil, fmt.Errorf("%w: %q at column %d", puzzle.ErrInvalidDigit, ch, i+1)
		}

		bank = append(bank, ch-'0')
	}

	return bank, nil
}

// ParseBanks parses one bank per non-blank line.
func ParseBanks(lines []string) ([]Bank, error) {
	banks := make([]Bank, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		bank, err := ParseBank(line)
		if err != nil {
			return nil, puzzle.NewParseError(i+1, line, err)
		}

		banks = append(banks, bank)
	}

	return banks, nil
}

// Largest returns the largest n-digit number that can be formed from the bank
// by keeping digits in their original order. It reports false when the bank
// holds fewer than n digits or n is not positive.
func Largest(bank Bank, n int) (int64, bool) {
	if n <= 0 || len(bank) < n {
		return 0, false
	}

	var (
		value int64
		from  int
	)

	for picked := range n {
		// Leave room for the digits still to be picked.
		last := len(bank) - (n - picked)
		best := from

		for i := from + 1; i <= last; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}

		value = value*10 + int64(bank[best])
		from = best + 1
	}

	return value, true
}

// TotalJoltage sums Largest over all banks. A bank too short for n digits has
// no joltage and fails the whole total with ErrEmptyInput, as does an empty
// bank list.
func TotalJoltage(banks []Bank, n int) (int64, error) {
	if len(banks) == 0 {
		return 0, puzzle.Emptyf("no banks")
	}

	var total int64

	for i, bank := range banks {
		joltage, ok := Largest(bank, n)
		if !ok {
			return 0, puzzle.Emptyf("bank %d holds fewer than %d batteries", i+1, n)
		}

		total, ok = safeconv.Add(total, joltage)
		if !ok {
			return 0, puzzle.Invariantf("total joltage overflows int64 at bank %d", i+1)
		}
	}

	return total, nil
}

// Solver implements puzzle.Solver for the battery bank puzzle.
type Solver struct{}

// New creates a battery bank solver.
func New() *Solver {
	return &Solver{}
}

// Descriptor implements puzzle.Solver.
func (s *Solver) Descriptor() puzzle.Descriptor {
	return puzzle.Descriptor{Day: Day, Title: Title, Input: input.ModeTrimmed}
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(_ context.Context, lines []string) (puzzle.Solution, error) {
	banks, err := ParseBanks(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	pairs, err := TotalJoltage(banks, PairSize)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("part 1: %w", err)
	}

	override, err := TotalJoltage(banks, OverrideSize)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("part 2: %w", err)
	}

	return puzzle.Solution{
		Answers: []puzzle.Answer{
			{Part: 1, Label: "output joltage", Value: pairs},
			{Part: 2, Label: "override joltage", Value: override},
		},
		Records: len(banks),
	}, nil
}
