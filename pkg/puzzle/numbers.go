package puzzle

import (
	"fmt"
	"strconv"
)

// ParseUint parses a non-negative base-10 integer without sign or whitespace.
func ParseUint(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidNumber)
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}

	return v, nil
}
