package dial_test

import (
	"context"
	"math"
	_ "embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/aoc/pkg/alg/ring"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/solvers/dial"
)

//go:embed testdata/example.txt
var example string

func TestParseMove(t *testing.T) {
	t.Parallel()

	move, err := dial.ParseMove("R10")
	require.NoError(t, err)
	assert.Equal(t, ring.Move{Direction: ring.Right, Distance: 10}, move)

	move, err = dial.ParseMove("L5")
	require.NoError(t, err)
	assert.Equal(t, ring.Move{Direction: ring.Left, Distance: 5}, move)
}

func TestParseMove_Errors(t *testing.T) {
	t.Parallel()

	_, err := dial.ParseMove("X10")
	require.ErrorIs(t, err, puzzle.ErrUnknownDirection)

	_, err = dial.ParseMove("RXX")
	require.ErrorIs(t, err, puzzle.ErrInvalidNumber)

	_, err = dial.ParseMove("R-5")
	require.ErrorIs(t, err, puzzle.ErrInvalidNumber)

	_, err = dial.ParseMove("R")
	require.ErrorIs(t, err, puzzle.ErrInvalidNumber)
}

func TestParseMoves_ReportsLine(t *testing.T) {
	t.Parallel()

	_, err := dial.ParseMoves([]string{"R1", "", "Q7"})
	require.ErrorIs(t, err, puzzle.ErrParse)

	var parseErr *puzzle.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
	assert.Equal(t, "Q7", parseErr.Input)
}

func TestSolve_Example(t *testing.T) {
	t.Parallel()

	solver := dial.New(dial.DefaultOptions())

	solution, err := solver.Solve(context.Background(), strings.Split(example, "\n"))
	require.NoError(t, err)

	assert.Equal(t, 10, solution.Records)
	assert.Equal(t, []puzzle.Answer{
		{Part: 1, Label: "zero landings", Value: 3},
		{Part: 2, Label: "password", Value: 6},
	}, solution.Answers)
}

func TestSolve_MaxDistance(t *testing.T) {
	t.Parallel()

	solver := dial.New(dial.DefaultOptions())

	solution, err := solver.Solve(context.Background(), []string{"R9223372036854775807"})
	require.NoError(t, err)

	require.Len(t, solution.Answers, 2)
	assert.Equal(t, int64(0), solution.Answers[0].Value)
	assert.Equal(t, int64(math.MaxInt64/100), solution.Answers[1].Value)
}

func TestSolve_InvalidGeometry(t *testing.T) {
	t.Parallel()

	solver := dial.New(dial.Options{Size: 10, Start: 10})

	_, err := solver.Solve(context.Background(), []string{"R1"})
	require.ErrorIs(t, err, puzzle.ErrInvariantViolation)
	require.ErrorIs(t, err, ring.ErrInvalidStart)
}

func TestDescriptor(t *testing.T) {
	t.Parallel()

	desc := dial.New(dial.DefaultOptions()).Descriptor()
	assert.Equal(t, dial.Day, desc.Day)
	assert.Equal(t, dial.Title, desc.Title)
}
