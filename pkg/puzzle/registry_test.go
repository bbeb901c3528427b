package puzzle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
)

// stubSolver answers with the number of lines it was given.
type stubSolver struct {
	desc puzzle.Descriptor
	err  error
}

func (s stubSolver) Descriptor() puzzle.Descriptor { return s.desc }

func (s stubSolver) Solve(_ context.Context, lines []string) (puzzle.Solution, error) {
	if s.err != nil {
		return puzzle.Solution{}, s.err
	}

	return puzzle.Solution{
		Answers: []puzzle.Answer{{Part: 1, Label: "lines", Value: int64(len(lines))}},
		Records: len(lines),
	}, nil
}

func stub(day int, title string) stubSolver {
	return stubSolver{desc: puzzle.Descriptor{Day: day, Title: title}}
}

func TestNewRegistry_OrdersByDay(t *testing.T) {
	t.Parallel()

	reg, err := puzzle.NewRegistry(stub(3, "c"), stub(1, "a"), stub(2, "b"))
	require.NoError(t, err)

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].Day, all[1].Day, all[2].Day})
}

func TestNewRegistry_Rejects(t *testing.T) {
	t.Parallel()

	_, err := puzzle.NewRegistry(stub(1, "a"), stub(1, "b"))
	require.ErrorIs(t, err, puzzle.ErrDuplicateDay)

	_, err = puzzle.NewRegistry(stub(0, "zero"))
	require.ErrorIs(t, err, puzzle.ErrInvalidDay)
}

func TestRegistry_Select(t *testing.T) {
	t.Parallel()

	reg, err := puzzle.NewRegistry(stub(1, "a"), stub(2, "b"))
	require.NoError(t, err)

	all, err := reg.Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	picked, err := reg.Select([]int{2, 1})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, 2, picked[0].Descriptor().Day)

	_, err = reg.Select([]int{9})
	require.ErrorIs(t, err, puzzle.ErrUnknownDay)

	_, ok := reg.Lookup(9)
	assert.False(t, ok)
}

func TestResult_Answer(t *testing.T) {
	t.Parallel()

	res := puzzle.Result{Answers: []puzzle.Answer{{Part: 1, Value: 3}, {Part: 2, Value: 6}}}

	a, ok := res.Answer(2)
	require.True(t, ok)
	assert.Equal(t, int64(6), a.Value)

	_, ok = res.Answer(3)
	assert.False(t, ok)
}
