package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestParseIdentifier(t *testing.T) {
	id, err := ParseIdentifier("unit_id", "123e4567-e89b-12d3-a456-426614174000")
	require.NoError(t, err)
	assert.Equal(t, uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"), id)

	upper, err := ParseIdentifier("unit_id", "123E4567-E89B-12D3-A456-426614174000")
	require.NoError(t, err)
	assert.Equal(t, id, upper)

	invalid := []string{
		"",
		"not-a-uuid",
		"123e4567-e89b-12d3-a456",
		"123e4567e89b12d3a456426614174000",
		"{123e4567-e89b-12d3-a456-426614174000}",
		"urn:uuid:123e4567-e89b-12d3-a456-426614174000",
		"123e4567-e89b-12d3-a456-42661417400g",
		"123e4567-e89b-12d3-a456-426614174000-extra",
	}
	for _, s := range invalid {
		_, err := ParseIdentifier("unit_id", s)
		assert.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrInvalidFormat), s)
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("service_date", nil))

	for _, s := range []string{"2023-01-01", "2023-12-31", "2023-05-15", "2024-02-29"} {
		assert.NoError(t, ValidateDate("service_date", strp(s)), s)
	}

	for _, s := range []string{
		"01/01/2023", "2023/01/01", "2023.01.01", "20230101", "not-a-date", "",
		"2023-02-30", "2023-13-01", "2023-1-05", "2023-06-15T10:00:00",
	} {
		err := ValidateDate("service_date", strp(s))
		require.Error(t, err, s)
		var fe *FormatError
		require.True(t, errors.As(err, &fe), s)
		assert.Equal(t, "service_date", fe.Field)
	}
}

func TestValidateTime(t *testing.T) {
	assert.NoError(t, ValidateTime("service_time", nil))

	for _, s := range []string{
		"14:30:00", "00:00:00", "23:59:59", "12:30:45Z", "12:30:45+00:00",
		"12:30:45.123", "12:30:45.123456-05:30", "09:15",
	} {
		assert.NoError(t, ValidateTime("service_time", strp(s)), s)
	}

	for _, s := range []string{
		"2:30 PM", "14h30", "14.30.00", "143000", "24:00:00", "99:00", "not-a-time", "",
		"12:30.5", "12:30:45+0000",
	} {
		assert.Error(t, ValidateTime("service_time", strp(s)), s)
	}
}

func TestParseDuration(t *testing.T) {
	valid := map[string]struct {
		in   any
		want int
	}{
		"json integer":     {json.Number("120"), 120},
		"json float":       {json.Number("90.0"), 90},
		"json fraction":    {json.Number("12.7"), 12},
		"json exponent":    {json.Number("1e2"), 100},
		"negative":         {json.Number("-5"), -5},
		"numeric string":   {"45", 45},
		"padded string":    {" 30 ", 30},
		"plain float":      {float64(15), 15},
		"plain int value":  {7, 7},
		"int32 max":        {json.Number("2147483647"), 2147483647},
		"int32 min string": {"-2147483648", -2147483648},
	}
	for name, tc := range valid {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDuration("service_duration", tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, in := range []any{
		nil, "abc", "12.5", true, map[string]any{}, []any{1}, json.Number("1e40"),
		json.Number("3000000000"), json.Number("3000000000.5"), json.Number("-2147483649"),
		"3000000000", 3000000000,
	} {
		_, err := ParseDuration("service_duration", in)
		assert.Error(t, err, "%v", in)
	}
}
