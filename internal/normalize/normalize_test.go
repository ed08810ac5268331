package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rinkside/internal/etl"
)

func TestDate(t *testing.T) {
	d, err := Date("2023-10-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC), d)

	for _, raw := range []string{"", "10/10/2023", "2023-13-01", "2023-10-10T00:00:00Z"} {
		_, err := Date(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, etl.IsKind(err, etl.KindSource))
	}
}

func TestInt(t *testing.T) {
	n, err := Int("12,345")
	require.NoError(t, err)
	assert.Equal(t, 12345, n)

	n, err = Int("1,234,567")
	require.NoError(t, err)
	assert.Equal(t, 1234567, n)

	_, err = Int("")
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindSource))

	_, err = Int("n/a")
	require.Error(t, err)
}

func TestNonNegativeInt(t *testing.T) {
	n, err := NonNegativeInt("0")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = NonNegativeInt("-3")
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindSource))
}

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"65:30", 65},
		{"60:00", 60},
		{"128:14", 128},
	}
	for _, tc := range cases {
		got, err := ClockMinutes(tc.raw)
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}

	for _, raw := range []string{"", "65", "65:3x", "x:30", "1:2:3"} {
		_, err := ClockMinutes(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, etl.IsKind(err, etl.KindSource))
	}
}

func TestHeightInches(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`5'11"`, 71},
		{`6'0"`, 72},
		{`6' 2"`, 74},
	}
	for _, tc := range cases {
		got, err := HeightInches(tc.raw)
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}

	for _, raw := range []string{"", "71", `6"0'`, `six'one"`} {
		_, err := HeightInches(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, etl.IsKind(err, etl.KindSource))
	}
}
