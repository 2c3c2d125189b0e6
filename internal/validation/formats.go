package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// canonicalIDLen is the length of the hyphenated 8-4-4-4-12 form.
const canonicalIDLen = 36

// ErrInvalidFormat is wrapped by every FormatError.
var ErrInvalidFormat = errors.New("invalid format")

// FormatError names the field whose value has the wrong shape.
type FormatError struct {
	Field string
	Value any
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format for %s: %v", e.Field, e.Value)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

var validate = New()

// ParseIdentifier accepts only the canonical hyphenated form of a UUID.
func ParseIdentifier(field, s string) (uuid.UUID, error) {
	if len(s) != canonicalIDLen {
		return uuid.Nil, &FormatError{Field: field, Value: s}
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &FormatError{Field: field, Value: s}
	}
	return id, nil
}

// ValidateDate checks a YYYY-MM-DD calendar date. A nil value is valid.
func ValidateDate(field string, s *string) error {
	if s == nil {
		return nil
	}
	if *s == "" || validate.Var(*s, tagISODate) != nil {
		return &FormatError{Field: field, Value: *s}
	}
	return nil
}

// ValidateTime checks an ISO 8601 time of day with an hour in 0..23. A nil value is valid.
func ValidateTime(field string, s *string) error {
	if s == nil {
		return nil
	}
	if *s == "" || validate.Var(*s, tagISOTime) != nil {
		return &FormatError{Field: field, Value: *s}
	}
	return nil
}

// ParseDuration coerces a decoded JSON value to a whole number of minutes.
// Numbers are truncated toward zero, numeric strings are parsed; anything else, or
// anything outside the int32 range, fails.
func ParseDuration(field string, v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(n), 10, 32); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &FormatError{Field: field, Value: v}
		}
		return truncate(field, f)
	case float64:
		return truncate(field, n)
	case int:
		if n > math.MaxInt32 || n < math.MinInt32 {
			return 0, &FormatError{Field: field, Value: v}
		}
		return n, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 32)
		if err != nil {
			return 0, &FormatError{Field: field, Value: v}
		}
		return int(i), nil
	}
	return 0, &FormatError{Field: field, Value: v}
}

func truncate(field string, f float64) (int, error) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t > math.MaxInt32 || t < math.MinInt32 {
		return 0, &FormatError{Field: field, Value: f}
	}
	return int(t), nil
}
