package generator

import (
	"strconv"
	"strings"
)

// MinRows is the smallest dataset ever produced; a header-only file is never emitted.
const MinRows = 1

// NormalizeRowCount clamps n to at least MinRows.
func NormalizeRowCount(n int) int {
	if n < MinRows {
		return MinRows
	}
	return n
}

// ParseRowCount reads a user-typed row count. It accepts the leading run of
// digits (with an optional sign), so "12", "12.9" and "12 rows" all yield 12.
// Anything unparsable counts as 0. The result is always clamped to MinRows.
func ParseRowCount(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return MinRows
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of int range. Negative overflow still clamps, positive saturates.
		if s[0] == '-' {
			return MinRows
		}
		return int(^uint(0) >> 1)
	}
	return NormalizeRowCount(n)
}
