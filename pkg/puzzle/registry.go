package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

// Registry errors.
var (
	ErrUnknownDay   = errors.New("unknown day")
	ErrDuplicateDay = errors.New("duplicate day")
	ErrInvalidDay   = errors.New("invalid day")
)

// Registry stores solvers ordered by day.
type Registry struct {
	ordered []Solver
	index   map[int]Solver
}

// NewRegistry creates a registry from solvers. Days must be positive and unique.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	index := make(map[int]Solver, len(solvers))
	ordered := make([]Solver, 0, len(solvers))

	for _, solver := range solvers {
		day := solver.Descriptor().Day
		if day <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidDay, day)
		}

		if _, exists := index[day]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDay, day)
		}

		index[day] = solver
		ordered = append(ordered, solver)
	}

	slices.SortFunc(ordered, func(a, b Solver) int {
		return a.Descriptor().Day - b.Descriptor().Day
	})

	return &Registry{ordered: ordered, index: index}, nil
}

// All returns all descriptors in day order.
func (r *Registry) All() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.ordered))

	for _, solver := range r.ordered {
		descriptors = append(descriptors, solver.Descriptor())
	}

	return descriptors
}

// Lookup returns the solver registered for day.
func (r *Registry) Lookup(day int) (Solver, bool) {
	solver, ok := r.index[day]

	return solver, ok
}

// Select returns the solvers for the given days in the given order.
// An empty selection returns every solver.
func (r *Registry) Select(days []int) ([]Solver, error) {
	if len(days) == 0 {
		return slices.Clone(r.ordered), nil
	}

	selected := make([]Solver, 0, len(days))

	for _, day := range days {
		solver, ok := r.Lookup(day)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
		}

		selected = append(selected, solver)
	}

	return selected, nil
}
