// Package safeconv provides overflow-checked integer conversions and
// arithmetic. Each function reports false instead of wrapping around.
package safeconv

import "math"

// Uint64ToInt64 converts v, reporting false when it exceeds math.MaxInt64.
func Uint64ToInt64(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}

	return int64(v), true
}

// Add returns a + b, reporting false on overflow.
func Add(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}

	return sum, true
}

// Mul returns a * b, reporting false on overflow.
func Mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	product := a * b
	if product/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}

	return product, true
}
