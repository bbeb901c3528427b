// Package puzzle defines the contract between daily solvers and the code that
// loads their input, runs them and reports answers.
package puzzle

import (
	"context"
	"time"

	"github.com/Sumatoshi-tech/aoc/pkg/input"
)

// Descriptor holds stable solver metadata.
type Descriptor struct {
	// Day is the puzzle day number, starting at 1.
	Day int
	// Title is the puzzle title.
	Title string
	// Input selects how input lines are cleaned before Solve sees them.
	Input input.Mode
}

// Answer is one numeric result of a day.
type Answer struct {
	Part  int    `json:"part"  yaml:"part"`
	Label string `json:"label" yaml:"label"`
	Value int64  `json:"value" yaml:"value"`
}

// Solution is what a solver returns for one input.
type Solution struct {
	Answers []Answer
	// Records is the number of input records parsed.
	Records int
}

// Result is a Solution annotated by the runner.
type Result struct {
	Day     int
	Title   string
	Answers []Answer
	Records int
	Elapsed time.Duration
}

// Answer returns the answer for the given part.
func (r Result) Answer(part int) (Answer, bool) {
	for _, a := range r.Answers {
		if a.Part == part {
			return a, true
		}
	}

	return Answer{}, false
}

// Solver parses one day's input and computes its answers.
type Solver interface {
	Descriptor() Descriptor
	Solve(ctx context.Context, lines []string) (Solution, error)
}
