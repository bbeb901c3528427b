package lobby_test

import (
	"context"
	_ "embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/lobby"
)

//go:embed testdata/example.txt
var example string

func mustBank(t *testing.T, line string) lobby.Bank {
	t.Helper()

	bank, err := lobby.ParseBank(line)
	require.NoError(t, err)

	return bank
}

func TestLargest_Pairs(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		"987654321111111": 98,
		"811111111111119": 89,
		"234234234234278": 78,
		"818181911112111": 92,
		"19":              19,
	}

	for line, want := range cases {
		got, ok := lobby.Largest(mustBank(t, line), lobby.PairSize)
		require.True(t, ok, line)
		assert.Equal(t, want, got, line)
	}
}

func TestLargest_Override(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		"987654321111111": 987654321111,
		"811111111111119": 811111111119,
		"234234234234278": 434234234278,
		"818181911112111": 888911112111,
	}

	for line, want := range cases {
		got, ok := lobby.Largest(mustBank(t, line), lobby.OverrideSize)
		require.True(t, ok, line)
		assert.Equal(t, want, got, line)
	}
}

func TestLargest_TooShort(t *testing.T) {
	t.Parallel()

	_, ok := lobby.Largest(mustBank(t, "9"), lobby.PairSize)
	assert.False(t, ok)

	_, ok = lobby.Largest(mustBank(t, "99"), 0)
	assert.False(t, ok)
}

func TestParseBanks_RejectsZeroAndLetters(t *testing.T) {
	t.Parallel()

	_, err := lobby.ParseBanks([]string{"123", "102"})
	require.ErrorIs(t, err, puzzle.ErrParse)
	require.ErrorIs(t, err, puzzle.ErrInvalidDigit)

	var parseErr *puzzle.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)

	_, err = lobby.ParseBanks([]string{"12a"})
	require.ErrorIs(t, err, puzzle.ErrInvalidDigit)
}

func TestTotalJoltage_Empty(t *testing.T) {
	t.Parallel()

	_, err := lobby.TotalJoltage(nil, lobby.PairSize)
	require.ErrorIs(t, err, puzzle.ErrEmptyInput)

	banks := []lobby.Bank{mustBank(t, "987654321111111"), mustBank(t, "5")}

	_, err = lobby.TotalJoltage(banks, lobby.PairSize)
	require.ErrorIs(t, err, puzzle.ErrEmptyInput)
	assert.Contains(t, err.Error(), "bank 2")
}

func TestTotalJoltage_Overflow(t *testing.T) {
	t.Parallel()

	big := mustBank(t, "999999999999999999")
	banks := []lobby.Bank{big, big, big, big, big, big, big, big, big, big}

	_, err := lobby.TotalJoltage(banks, len(big))
	require.ErrorIs(t, err, puzzle.ErrInvariantViolation)
}

func TestSolve_Example(t *testing.T) {
	t.Parallel()

	solution, err := lobby.New().Solve(context.Background(), strings.Split(example, "\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, solution.Records)
	require.Len(t, solution.Answers, 2)
	assert.Equal(t, int64(357), solution.Answers[0].Value)
	assert.Equal(t, int64(3121910778619), solution.Answers[1].Value)
}

func TestSolve_ShortBanksFailPartTwo(t *testing.T) {
	t.Parallel()

	_, err := lobby.New().Solve(context.Background(), []string{"12345"})
	require.ErrorIs(t, err, puzzle.ErrEmptyInput)
	assert.Contains(t, err.Error(), "part 2")
}

func TestSolve_ShortBankFailsPartOne(t *testing.T) {
	t.Parallel()

	_, err := lobby.New().Solve(context.Background(), []string{"987654321111111", "5"})
	require.ErrorIs(t, err, puzzle.ErrEmptyInput)
	assert.Contains(t, err.Error(), "part 1")
}
