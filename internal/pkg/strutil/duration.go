// Package strutil provides string parsing helpers for command flags.
package strutil

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ParseDuration parses an amount followed by a single unit: d (days), h, m or s.
// "7d" and "90m" are valid; compound forms such as "1h30m" are not.
func ParseDuration(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	amount, err := strconv.ParseUint(s[:len(s)-1], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number in duration %q: %w", s, err)
	}

	var unit time.Duration
	switch s[len(s)-1] {
	case 'd':
		unit = 24 * time.Hour
	case 'h':
		unit = time.Hour
	case 'm':
		unit = time.Minute
	case 's':
		unit = time.Second
	default:
		return 0, fmt.Errorf("unsupported time unit in duration %q", s)
	}

	if amount > uint64(math.MaxInt64/int64(unit)) {
		return 0, fmt.Errorf("duration %q is out of range", s)
	}

	return time.Duration(amount) * unit, nil
}
