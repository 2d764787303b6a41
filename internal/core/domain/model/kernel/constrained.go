package kernel

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"ordertaking/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateString validates a required string of at most maxLen characters.
//
// Parameters:
//   - fieldName: Name reported in the error (e.g. "OrderId")
//   - maxLen: Maximum length in characters (runes)
//   - s: Raw input
//
// Returns:
//   - string: The input, unchanged, when valid
//   - error: errs.ValueIsRequiredError when s is empty,
//     errs.ValueIsInvalidError when s is longer than maxLen
func CreateString(fieldName string, maxLen int, s string) (string, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError(fieldName)
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", errs.NewValueIsInvalidErrorWithCause(
			fieldName,
			fmt.Errorf("must not be more than %d chars", maxLen),
		)
	}
	return s, nil
}

// CreateStringOption validates an optional string of at most maxLen characters.
// An empty input is not a failure: it yields a nil result.
//
// Example:
//
//	line2, err := CreateStringOption("AddressLine2", 50, "")
//	// line2 == nil, err == nil
func CreateStringOption(fieldName string, maxLen int, s string) (*string, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // absence is a valid outcome
	}
	v, err := CreateString(fieldName, maxLen, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateInt validates that i lies within the inclusive range [minValue..maxValue].
// Returns errs.ValueIsOutOfRangeError naming fieldName otherwise.
func CreateInt(fieldName string, minValue, maxValue, i int) (int, error) {
	if i < minValue || i > maxValue {
		return 0, errs.NewValueIsOutOfRangeError(fieldName, i, minValue, maxValue)
	}
	return i, nil
}

// CreateDecimal validates that d lies within the inclusive range [minValue..maxValue].
// Returns errs.ValueIsOutOfRangeError naming fieldName otherwise.
func CreateDecimal(fieldName string, minValue, maxValue, d decimal.Decimal) (decimal.Decimal, error) {
	if d.LessThan(minValue) || d.GreaterThan(maxValue) {
		return decimal.Zero, errs.NewValueIsOutOfRangeError(
			fieldName, d.String(), minValue.StringFixed(2), maxValue.StringFixed(2))
	}
	return d, nil
}

// CreateLike validates a required string against pattern. The error for a
// mismatch carries both the offending value and the pattern.
//
// Parameters:
//   - fieldName: Name reported in the error (e.g. "ZipCode")
//   - pattern: Anchored regular expression the whole input must match
//   - s: Raw input
//
// Returns:
//   - string: The input, unchanged, when valid
//   - error: errs.ValueIsRequiredError when s is empty,
//     errs.ValueIsInvalidError when s does not match
func CreateLike(fieldName string, pattern *regexp.Regexp, s string) (string, error) {
	if s == "" {
		return "", errs.NewValueIsRequiredError(fieldName)
	}
	if !pattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			fieldName,
			fmt.Errorf("'%s' must match the pattern '%s'", s, pattern),
		)
	}
	return s, nil
}
