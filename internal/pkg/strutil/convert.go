// Package strutil provides small string conversion helpers for query parameters.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 on failure.
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToInt64 parses s as an int64, returning 0 on failure.
func ConvertToInt64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToBool parses s as a bool, returning false on failure.
func ConvertToBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
