package errors

import (
	"math"
	"unicode"
)

// maxDatasetIDLength bounds dataset identifiers; they end up in CSS class
// names, SVG ids and cache keys.
const maxDatasetIDLength = 256

// ValidateDatasetID checks that id can name a dataset.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - Maximum length of 256 characters
func ValidateDatasetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "dataset id cannot be empty")
	}
	if len(id) > maxDatasetIDLength {
		return New(ErrCodeInvalidInput, "dataset id too long (max %d characters)", maxDatasetIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "dataset id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateDimension checks a container dimension in pixels.
// Zero is allowed and means "use the configured default".
func ValidateDimension(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative (got %d)", name, v)
	}
	return nil
}

// ValidateRange checks explicit range bounds.
// Equal bounds are accepted; charts render them as zero-height bars.
func ValidateRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return New(ErrCodeInvalidRange, "range bounds must be finite (got [%v, %v])", min, max)
	}
	if max < min {
		return New(ErrCodeInvalidRange, "range max %v is below min %v", max, min)
	}
	return nil
}
