// Package printing solves the paper roll puzzle: a roll is reachable by a
// forklift when fewer than four of its eight neighbours hold rolls.
package printing

import (
	"context"
	"strings"

	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
)

const (
	// Day is the puzzle day served by this package.
	Day = 4
	// Title is the puzzle title.
	Title = "Printing Department"

	// MaxNeighbours is the exclusive upper bound of neighbouring rolls for a
	// roll to be accessible.
	MaxNeighbours = 4
)

// Cell is one grid square.
type Cell byte

// Grid cell kinds.
const (
	Empty   Cell = '.'
	Roll    Cell = '@'
	Removed Cell = 'x'
)

func parseCell(ch byte) (Cell, bool) {
	switch Cell(ch) {
	case Empty, Roll, Removed:
		return Cell(ch), true
	default:
		return 0, false
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

var neighbourOffsets = [...]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a rectangular or ragged field of cells.
type Grid struct {
	rows [][]Cell
}

// ParseGrid builds a grid from text rows. Characters other than '.', '@' and
// 'x' are dropped, and blank rows are skipped.
func ParseGrid(lines []string) *Grid {
	g := &Grid{}

	for _, line := range lines {
		row := make([]Cell, 0, len(line))

		for i := range len(line) {
			if cell, ok := parseCell(line[i]); ok {
				row = append(row, cell)
			}
		}

		if len(row) > 0 {
			g.rows = append(g.rows, row)
		}
	}

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// At returns the cell at (r, c), reporting false outside the grid.
func (g *Grid) At(r, c int) (Cell, bool) {
	if r < 0 || r >= len(g.rows) || c < 0 || c >= len(g.rows[r]) {
		return 0, false
	}

	return g.rows[r][c], true
}

// Rolls returns the number of cells holding a roll.
func (g *Grid) Rolls() int {
	var n int

	for _, row := range g.rows {
		for _, cell := range row {
			if cell == Roll {
				n++
			}
		}
	}

	return n
}

// NeighbourRolls counts rolls among the eight cells around (r, c).
func (g *Grid) NeighbourRolls(r, c int) int {
	var n int

	for _, off := range neighbourOffsets {
		if cell, ok := g.At(r+off.Row, c+off.Col); ok && cell == Roll {
			n++
		}
	}

	return n
}

// Accessible returns the coordinates of every roll with fewer than
// MaxNeighbours neighbouring rolls, in row-major order.
func (g *Grid) Accessible() []Coord {
	var out []Coord

	for r, row := range g.rows {
		for c, cell := range row {
			if cell == Roll && g.NeighbourRolls(r, c) < MaxNeighbours {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}

	return out
}

// Remove marks the given cells as removed.
func (g *Grid) Remove(coords []Coord) {
	for _, at := range coords {
		g.rows[at.Row][at.Col] = Removed
	}
}

// RemoveAll repeatedly removes every accessible roll until none is left and
// returns how many were removed. The grid is modified in place.
func (g *Grid) RemoveAll() int {
	var removed int

	for {
		batch := g.Accessible()
		if len(batch) == 0 {
			return removed
		}

		g.Remove(batch)
		removed += len(batch)
	}
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder

	for i, row := range g.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}

		for _, cell := range row {
			sb.WriteByte(byte(cell))
		}
	}

	return sb.String()
}

// Solver implements puzzle.Solver for the paper roll puzzle.
type Solver struct{}

// New creates a paper roll solver.
func New() *Solver {
	return &Solver{}
}

// Descriptor implements puzzle.Solver.
func (s *Solver) Descriptor() puzzle.Descriptor {
	return puzzle.Descriptor{Day: Day, Title: Title, Input: input.ModeTrimmed}
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(_ context.Context, lines []string) (puzzle.Solution, error) {
	grid := ParseGrid(lines)
	if grid.Rows() == 0 {
		return puzzle.Solution{}, puzzle.Emptyf("no grid rows")
	}

	accessible := len(grid.Accessible())

	return puzzle.Solution{
		Answers: []puzzle.Answer{
			{Part: 1, Label: "accessible rolls", Value: int64(accessible)},
			{Part: 2, Label: "removable rolls", Value: int64(grid.RemoveAll())},
		},
		Records: grid.Rows(),
	}, nil
}
