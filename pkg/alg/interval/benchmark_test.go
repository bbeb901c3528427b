package interval

import (
	"testing"
)

// Benchmark constants.
const (
	benchIntervalCount = 1000
	benchSpacing       = 10
	benchWidth         = 5
	benchQueryPoint    = 4321
)

func benchIntervals() []Interval {
	out := make([]Interval, 0, benchIntervalCount)

	for i := range benchIntervalCount {
		low := int64(i * benchSpacing)

		out = append(out, Interval{start: low, end: low + benchWidth})
	}

	return out
}

// BenchmarkMergeIn_Disjoint benchmarks folding non-overlapping intervals.
func BenchmarkMergeIn_Disjoint(b *testing.B) {
	intervals := benchIntervals()

	b.ResetTimer()

	for range b.N {
		NewSet(intervals...)
	}
}

// BenchmarkMergeIn_Collapse benchmarks one wide interval absorbing every member.
func BenchmarkMergeIn_Collapse(b *testing.B) {
	intervals := benchIntervals()
	wide := Interval{start: 0, end: benchIntervalCount * benchSpacing}

	b.ResetTimer()

	for range b.N {
		s := NewSet(intervals...)
		s.MergeIn(wide)
	}
}

// BenchmarkContains benchmarks point queries.
func BenchmarkContains(b *testing.B) {
	s := NewSet(benchIntervals()...)

	b.ResetTimer()

	for range b.N {
		s.Contains(benchQueryPoint)
	}
}
