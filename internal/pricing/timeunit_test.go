package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeUnit(t *testing.T) {
	cases := []struct {
		in   string
		want TimeUnit
	}{
		{"d", Day},
		{"day", Day},
		{"DAYS", Day},
		{"w", Week},
		{"week", Week},
		{"y", Year},
		{"Year", Year},
		{" years ", Year},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeUnit(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTimeUnitRejectsUnknown(t *testing.T) {
	for _, in := range []string{"month", "m", "", "fortnight"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimeUnit(in)
			var uerr InvalidTimeUnitError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, in, uerr.Selector)
		})
	}
}

func TestDivisors(t *testing.T) {
	assert.Equal(t, 365.0, Day.Divisor())
	assert.Equal(t, 52+1.0/52, Week.Divisor())
	assert.Equal(t, 1.0, Year.Divisor())

	// an unparsed unit has no divisor; construction treats 0 as invalid
	assert.Equal(t, 0.0, TimeUnit("month").Divisor())
}
