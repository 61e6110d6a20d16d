package errors

import (
	"strings"
)

// ValidateRange validates a [min, max] selection range.
// Both bounds must be non-negative and min must not exceed max.
func ValidateRange(min, max int) error {
	if min < 0 || max < 0 {
		return New(ErrCodeInvalidRange, "range bounds must be non-negative (min=%d, max=%d)", min, max)
	}
	if min > max {
		return New(ErrCodeInvalidRange, "min (%d) must not exceed max (%d)", min, max)
	}
	return nil
}

// ValidateSize validates a requested graph size.
func ValidateSize(size int) error {
	const maxSize = 10_000_000
	if size <= 0 {
		return New(ErrCodeInvalidInput, "graph size must be positive, got %d", size)
	}
	if size > maxSize {
		return New(ErrCodeInvalidInput, "graph size too large (max %d)", maxSize)
	}
	return nil
}

// ValidateFormats checks every entry of formats against the allowed set.
func ValidateFormats(formats []string, allowed ...string) error {
	for _, f := range formats {
		ok := false
		for _, a := range allowed {
			if f == a {
				ok = true
				break
			}
		}
		if !ok {
			return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", f, strings.Join(allowed, ", "))
		}
	}
	return nil
}
