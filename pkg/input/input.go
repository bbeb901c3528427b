// Package input loads puzzle input files as ordered lines of text.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Mode selects how lines are cleaned before they reach a solver.
type Mode uint8

const (
	// ModeTrimmed strips leading and trailing whitespace from every line.
	ModeTrimmed Mode = iota
	// ModeRaw keeps column alignment; only a trailing carriage return is removed.
	ModeRaw
)

// ReadLines reads r line by line. A final newline does not produce an empty
// trailing line; blank lines in the middle are kept.
func ReadLines(r io.Reader, mode Mode) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	var lines []string

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if mode == ModeTrimmed {
			line = strings.TrimSpace(line)
		}

		lines = append(lines, line)
	}

	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return lines, nil
}

// FileName returns the input file name for a day, e.g. "day-01.txt" or
// "day-01.example.txt".
func FileName(day int, example bool) string {
	if example {
		return fmt.Sprintf("day-%02d.example.txt", day)
	}

	return fmt.Sprintf("day-%02d.txt", day)
}

// Path joins dir with FileName.
func Path(dir string, day int, example bool) string {
	return filepath.Join(dir, FileName(day, example))
}

// Load reads the input file of a day from dir.
func Load(dir string, day int, example bool, mode Mode) ([]string, error) {
	path := Path(dir, day, example)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lines, nil
}

// Dir serves day inputs from a directory.
type Dir struct {
	Path    string
	Example bool
}

// Lines loads the input of the given day.
func (d Dir) Lines(day int, mode Mode) ([]string, error) {
	return Load(d.Path, day, d.Example, mode)
}

// NonEmpty returns the lines that contain more than whitespace.
func NonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}

	return out
}
