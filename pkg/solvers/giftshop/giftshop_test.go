package giftshop_test

import (
	"context"
	_ "embed"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/aoc/pkg/alg/interval"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/giftshop"
)

//go:embed testdata/example.txt
var example string

func TestIsDoubled(t *testing.T) {
	t.Parallel()

	for _, id := range []int64{11, 22, 99, 1010, 1188511885, 464464} {
		assert.True(t, giftshop.IsDoubled(id), "%d", id)
	}

	for _, id := range []int64{1, 100, 1331, 150, 1234567, 655556, 111} {
		assert.False(t, giftshop.IsDoubled(id), "%d", id)
	}
}

func TestIsRepeated(t *testing.T) {
	t.Parallel()

	for _, id := range []int64{11, 111, 1010, 565656, 824824824, 2121212121} {
		assert.True(t, giftshop.IsRepeated(id), "%d", id)
	}

	for _, id := range []int64{7, 12, 1231, 100, 1698528} {
		assert.False(t, giftshop.IsRepeated(id), "%d", id)
	}
}

func TestParseRanges(t *testing.T) {
	t.Parallel()

	ranges, err := giftshop.ParseRanges([]string{"85-103,", "5-5,"})
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, int64(85), ranges[0].Start())
	assert.Equal(t, int64(103), ranges[0].End())
	assert.Equal(t, uint64(1), ranges[1].Len())
}

func TestParseRanges_Errors(t *testing.T) {
	t.Parallel()

	_, err := giftshop.ParseRanges([]string{"1-2,34"})
	require.ErrorIs(t, err, puzzle.ErrMalformedRange)

	_, err = giftshop.ParseRanges([]string{"1-x"})
	require.ErrorIs(t, err, puzzle.ErrInvalidNumber)

	_, err = giftshop.ParseRanges([]string{"9-3"})
	require.ErrorIs(t, err, puzzle.ErrParse)
	require.ErrorIs(t, err, puzzle.ErrInvariantViolation)
	require.ErrorIs(t, err, interval.ErrInverted)
}

func TestSolve_Example(t *testing.T) {
	t.Parallel()

	solution, err := giftshop.New().Solve(context.Background(), strings.Split(example, "\n"))
	require.NoError(t, err)

	assert.Equal(t, 11, solution.Records)
	require.Len(t, solution.Answers, 2)
	assert.Equal(t, int64(1227775554), solution.Answers[0].Value)
	assert.Equal(t, int64(4174379265), solution.Answers[1].Value)
}

func TestSumMatching_RangeEndingAtMaxInt64(t *testing.T) {
	t.Parallel()

	iv, err := interval.New(math.MaxInt64-1, math.MaxInt64)
	require.NoError(t, err)

	var visited []int64

	sum, err := giftshop.SumMatching([]interval.Interval{iv}, func(id int64) bool {
		visited = append(visited, id)

		return false
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum)
	assert.Equal(t, []int64{math.MaxInt64 - 1, math.MaxInt64}, visited)
}

func TestSolve_RangeEndingAtMaxInt64(t *testing.T) {
	t.Parallel()

	solution, err := giftshop.New().Solve(context.Background(), []string{"9223372036854775806-9223372036854775807"})
	require.NoError(t, err)

	require.Len(t, solution.Answers, 2)
	assert.Equal(t, int64(0), solution.Answers[0].Value)
	assert.Equal(t, int64(0), solution.Answers[1].Value)
}

func TestSolve_SumOverflow(t *testing.T) {
	t.Parallel()

	lines := []string{"8888888888888888888-8888888888888888888,7777777777777777777-7777777777777777777"}

	_, err := giftshop.New().Solve(context.Background(), lines)
	require.ErrorIs(t, err, puzzle.ErrInvariantViolation)
	assert.Contains(t, err.Error(), "part 2")
}
