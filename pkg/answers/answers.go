// Package answers loads a file of expected puzzle answers and compares it
// with computed results.
package answers

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
)

//go:embed schema.json
var schemaJSON []byte

// Sentinel errors.
var (
	ErrInvalidFile  = errors.New("invalid answers file")
	ErrDuplicateDay = errors.New("day listed twice")
)

// SchemaError lists the schema violations of an answers file.
type SchemaError struct {
	Problems []string
}

// Error implements error.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidFile, strings.Join(e.Problems, "; "))
}

// Unwrap exposes ErrInvalidFile to errors.Is.
func (e *SchemaError) Unwrap() error {
	return ErrInvalidFile
}

// Expected holds the known answers of one day. A nil part is not checked.
type Expected struct {
	Day   int    `yaml:"day"`
	Part1 *int64 `yaml:"part1"`
	Part2 *int64 `yaml:"part2"`
}

// Part returns the expected answer of a part, reporting false when unset.
func (e Expected) Part(part int) (int64, bool) {
	var v *int64

	switch part {
	case 1:
		v = e.Part1
	case 2:
		v = e.Part2
	}

	if v == nil {
		return 0, false
	}

	return *v, true
}

// File is a parsed answers file.
type File struct {
	Answers []Expected `yaml:"answers"`
}

// Days returns the listed days in file order.
func (f *File) Days() []int {
	days := make([]int, 0, len(f.Answers))
	for _, e := range f.Answers {
		days = append(days, e.Day)
	}

	return days
}

// Load reads and validates an answers file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes YAML answers and validates them against the embedded schema.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	var doc any

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	err = validate(doc)
	if err != nil {
		return nil, err
	}

	var f File

	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	seen := make(map[int]bool, len(f.Answers))
	for _, e := range f.Answers {
		if seen[e.Day] {
			return nil, fmt.Errorf("%w: %w: %d", ErrInvalidFile, ErrDuplicateDay, e.Day)
		}

		seen[e.Day] = true
	}

	return &f, nil
}

func validate(doc any) error {
	if doc == nil {
		return &SchemaError{Problems: []string{"document is empty"}}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return &SchemaError{Problems: problems}
}

// Outcome is the comparison of one expected answer.
type Outcome struct {
	Day  int
	Part int
	Want int64
	Got  int64
	// Found is false when the result for this day or part is missing.
	Found bool
}

// Pass reports whether the computed answer matches.
func (o Outcome) Pass() bool {
	return o.Found && o.Want == o.Got
}

// Compare checks every expected part against results.
func Compare(f *File, results []puzzle.Result) []Outcome {
	byDay := make(map[int]puzzle.Result, len(results))
	for _, res := range results {
		byDay[res.Day] = res
	}

	var outcomes []Outcome

	for _, e := range f.Answers {
		for part := 1; part <= 2; part++ {
			want, ok := e.Part(part)
			if !ok {
				continue
			}

			outcome := Outcome{Day: e.Day, Part: part, Want: want}

			if answer, found := byDay[e.Day].Answer(part); found {
				outcome.Got = answer.Value
				outcome.Found = true
			}

			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes
}

// Failed counts the outcomes that did not pass.
func Failed(outcomes []Outcome) int {
	var n int

	for _, o := range outcomes {
		if !o.Pass() {
			n++
		}
	}

	return n
}
