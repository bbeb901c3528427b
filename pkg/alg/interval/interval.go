// Package interval maintains sets of inclusive integer ranges. A Set keeps its
// members pairwise disjoint: every MergeIn collapses the incoming interval
// together with all members it overlaps into a single member, so coverage and
// membership queries never double-count.
package interval

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors.
var (
	ErrInverted = errors.New("interval start is after end")
	ErrEmpty    = errors.New("no intervals to merge")
)

// Interval is a closed range [Start, End]. Construct it with New.
type Interval struct {
	start int64
	end   int64
}

// New creates the interval [start, end].
func New(start, end int64) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("%w: [%d, %d]", ErrInverted, start, end)
	}

	return Interval{start: start, end: end}, nil
}

// Point creates the single-value interval [v, v].
func Point(v int64) Interval {
	return Interval{start: v, end: v}
}

// Start returns the lower bound.
func (iv Interval) Start() int64 { return iv.start }

// End returns the upper bound.
func (iv Interval) End() int64 { return iv.end }

// Len returns the number of integers covered.
func (iv Interval) Len() uint64 {
	return uint64(iv.end) - uint64(iv.start) + 1
}

// Contains reports whether start <= v <= end.
func (iv Interval) Contains(v int64) bool {
	return iv.start <= v && v <= iv.end
}

// Overlaps reports whether the two intervals share at least one value.
// Intervals touching at a boundary point overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start <= other.end && other.start <= iv.end
}

// String formats the interval as "[start,end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.start, iv.end)
}

// Merge returns the smallest interval spanning all given intervals.
func Merge(intervals ...Interval) (Interval, error) {
	if len(intervals) == 0 {
		return Interval{}, ErrEmpty
	}

	merged := intervals[0]

	for _, iv := range intervals[1:] {
		merged.start = min(merged.start, iv.start)
		merged.end = max(merged.end, iv.end)
	}

	return merged, nil
}

// Set is a collection of pairwise disjoint intervals. The zero value is an
// empty set ready for use.
type Set struct {
	members []Interval
}

// NewSet folds the given intervals into a new set, in order.
func NewSet(intervals ...Interval) *Set {
	s := &Set{}

	for _, iv := range intervals {
		s.MergeIn(iv)
	}

	return s
}

// MergeIn adds iv to the set. Members overlapping iv are removed and replaced
// by one interval spanning them and iv.
func (s *Set) MergeIn(iv Interval) {
	overlapping := make([]Interval, 0, len(s.members)+1)
	disjoint := make([]Interval, 0, len(s.members)+1)

	for _, member := range s.members {
		if member.Overlaps(iv) {
			overlapping = append(overlapping, member)
		} else {
			disjoint = append(disjoint, member)
		}
	}

	if len(overlapping) == 0 {
		s.members = append(disjoint, iv)

		return
	}

	// Never empty: overlapping has at least one member.
	merged, _ := Merge(append(overlapping, iv)...)

	s.members = append(disjoint, merged)
}

// Len returns the number of disjoint members.
func (s *Set) Len() int {
	return len(s.members)
}

// Members returns a copy of the members ordered by start.
func (s *Set) Members() []Interval {
	out := slices.Clone(s.members)

	slices.SortFunc(out, func(a, b Interval) int {
		return cmp.Compare(a.start, b.start)
	})

	return out
}

// Contains reports whether any member contains v.
func (s *Set) Contains(v int64) bool {
	for _, member := range s.members {
		if member.Contains(v) {
			return true
		}
	}

	return false
}

// TotalCoverage returns the number of distinct integers covered by the set.
func (s *Set) TotalCoverage() uint64 {
	var total uint64

	for _, member := range s.members {
		total += member.Len()
	}

	return total
}
