// Package worksheet solves the math worksheet puzzle. Problems are laid out
// side by side: numbers stacked in columns with an operator row at the bottom.
// Part one reads numbers row-wise; part two reads each character column top to
// bottom as one number, with blank columns separating problems.
package worksheet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/safeconv"
)

const (
	// Day is the puzzle day served by this package.
	Day = 6
	// Title is the puzzle title.
	Title = "Trash Compactor"
)

// ErrMisplacedOperators is the parse cause for rows following the operator row.
var ErrMisplacedOperators = errors.New("rows after the operator row")

// Operator combines the numbers of one problem.
type Operator byte

// Supported operators.
const (
	Add      Operator = '+'
	Multiply Operator = '*'
)

// ParseOperator parses a single operator token.
func ParseOperator(token string) (Operator, bool) {
	switch token {
	case string(Add):
		return Add, true
	case string(Multiply):
		return Multiply, true
	default:
		return 0, false
	}
}

// Apply folds numbers with the operator, starting from its identity. It
// reports false when the result overflows int64.
func (op Operator) Apply(numbers []int64) (int64, bool) {
	var (
		acc  int64
		step func(a, b int64) (int64, bool)
	)

	switch op {
	case Add:
		acc, step = 0, safeconv.Add
	case Multiply:
		acc, step = 1, safeconv.Mul
	default:
		panic(fmt.Sprintf("worksheet: unknown operator %q", byte(op)))
	}

	for _, n := range numbers {
		var ok bool

		acc, ok = step(acc, n)
		if !ok {
			return 0, false
		}
	}

	return acc, true
}

// String returns the operator symbol.
func (op Operator) String() string {
	return string(op)
}

// Sheet is a parsed worksheet.
type Sheet struct {
	// Rows holds the whitespace-separated numbers of each number row.
	Rows [][]int64
	// Raw holds the number rows as written, for column-wise reading.
	Raw []string
	// Ops holds one operator per problem, left to right.
	Ops []Operator
}

// Parse reads number rows followed by one operator row. Blank lines are
// ignored. Lines must keep their original spacing.
func Parse(lines []string) (*Sheet, error) {
	sheet := &Sheet{}

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if sheet.Ops != nil {
			return nil, puzzle.NewParseError(i+1, line, ErrMisplacedOperators)
		}

		if ops, ok := parseOperators(fields); ok {
			sheet.Ops = ops

			continue
		}

		row, err := parseNumbers(fields)
		if err != nil {
			return nil, puzzle.NewParseError(i+1, line, err)
		}

		sheet.Rows = append(sheet.Rows, row)
		sheet.Raw = append(sheet.Raw, line)
	}

	if len(sheet.Ops) == 0 {
		return nil, puzzle.Emptyf("no operator row")
	}

	if len(sheet.Rows) == 0 {
		return nil, puzzle.Emptyf("no number rows")
	}

	return sheet, nil
}

func parseOperators(fields []string) ([]Operator, bool) {
	ops := make([]Operator, 0, len(fields))

	for _, field := range fields {
		op, ok := ParseOperator(field)
		if !ok {
			return nil, false
		}

		ops = append(ops, op)
	}

	return ops, true
}

func parseNumbers(fields []string) ([]int64, error) {
	row := make([]int64, 0, len(fields))

	for _, field := range fields {
		if strings.ContainsAny(field, string(Add)+string(Multiply)) {
			return nil, fmt.Errorf("%w: %q mixed with numbers", puzzle.ErrUnknownOperator, field)
		}

		n, err := puzzle.ParseUint(field)
		if err != nil {
			return nil, err
		}

		row = append(row, n)
	}

	return row, nil
}

// RowProblems groups the numbers of each column of Rows under its operator.
func (s *Sheet) RowProblems() ([][]int64, error) {
	problems := make([][]int64, len(s.Ops))

	for r, row := range s.Rows {
		if len(row) != len(s.Ops) {
			return nil, puzzle.Invariantf("row %d has %d numbers, want %d", r+1, len(row), len(s.Ops))
		}

		for c, n := range row {
			problems[c] = append(problems[c], n)
		}
	}

	return problems, nil
}

// ColumnProblems reads the raw rows column by column. Each non-blank
// character column is one number; blank columns end a problem.
func (s *Sheet) ColumnProblems() ([][]int64, error) {
	var (
		problems [][]int64
		current  []int64
	)

	for c, column := range Transpose(s.Raw) {
		digits := strings.TrimSpace(column)
		if digits == "" {
			if current != nil {
				problems = append(problems, current)
				current = nil
			}

			continue
		}

		n, err := puzzle.ParseUint(digits)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", c+1, err)
		}

		current = append(current, n)
	}

	if current != nil {
		problems = append(problems, current)
	}

	if len(problems) != len(s.Ops) {
		return nil, puzzle.Invariantf("%d column groups, want %d", len(problems), len(s.Ops))
	}

	return problems, nil
}

// Transpose turns rows into columns. Short rows are padded with spaces.
func Transpose(rows []string) []string {
	var width int
	for _, row := range rows {
		width = max(width, len(row))
	}

	columns := make([]string, width)
	buf := make([]byte, len(rows))

	for c := range width {
		for r, row := range rows {
			if c < len(row) {
				buf[r] = row[c]
			} else {
				buf[r] = ' '
			}
		}

		columns[c] = string(buf)
	}

	return columns
}

// GrandTotal applies each operator to its problem and sums the results.
func GrandTotal(ops []Operator, problems [][]int64) (int64, error) {
	if len(ops) != len(problems) {
		return 0, puzzle.Invariantf("%d operators for %d problems", len(ops), len(problems))
	}

	var total int64

	for i, op := range ops {
		value, ok := op.Apply(problems[i])
		if !ok {
			return 0, puzzle.Invariantf("problem %d overflows int64", i+1)
		}

		total, ok = safeconv.Add(total, value)
		if !ok {
			return 0, puzzle.Invariantf("grand total overflows int64")
		}
	}

	return total, nil
}

// Solver implements puzzle.Solver for the worksheet puzzle.
type Solver struct{}

// New creates a worksheet solver.
func New() *Solver {
	return &Solver{}
}

// Descriptor implements puzzle.Solver. Input is read raw so that columns stay
// aligned.
func (s *Solver) Descriptor() puzzle.Descriptor {
	return puzzle.Descriptor{Day: Day, Title: Title, Input: input.ModeRaw}
}

// Solve implements puzzle.Solver.
func (s *Solver) Solve(_ context.Context, lines []string) (puzzle.Solution, error) {
	sheet, err := Parse(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	rowWise, err := total(sheet.Ops, sheet.RowProblems)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("part 1: %w", err)
	}

	columnWise, err := total(sheet.Ops, sheet.ColumnProblems)
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("part 2: %w", err)
	}

	return puzzle.Solution{
		Answers: []puzzle.Answer{
			{Part: 1, Label: "grand total", Value: rowWise},
			{Part: 2, Label: "column-wise grand total", Value: columnWise},
		},
		Records: len(sheet.Rows) + 1,
	}, nil
}

func total(ops []Operator, group func() ([][]int64, error)) (int64, error) {
	problems, err := group()
	if err != nil {
		return 0, err
	}

	return GrandTotal(ops, problems)
}
