package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("01/03/2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, 0, d.Hour())

	for _, bad := range []string{
		"2025-03-01",
		"31/02/2025",
		"29/02/2023",
		"1/3/2025",
		"01/13/2025",
		"",
	} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("09/10/2025")
	require.NoError(t, err)
	assert.Equal(t, "09/10/2025", FormatDate(d))
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want TimeOfDay
	}{
		{"0000", 0},
		{"0800", 8 * 60},
		{"1900", 19 * 60},
		{"0915", 9*60 + 15},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"800", "08:00", "2400", "0960", "ab00", ""} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", MustTimeOfDay("0905").String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "19:00", MustTimeOfDay("1900").String())
}

func TestAlignedTo(t *testing.T) {
	assert.True(t, MustTimeOfDay("0900").AlignedTo(15))
	assert.True(t, MustTimeOfDay("0915").AlignedTo(15))
	assert.False(t, MustTimeOfDay("0907").AlignedTo(15))
	assert.False(t, MustTimeOfDay("0952").AlignedTo(15))
}

func TestCombine(t *testing.T) {
	d, err := ParseDate("01/03/2025")
	require.NoError(t, err)
	at := Combine(d, MustTimeOfDay("0930"))
	assert.Equal(t, time.Date(2025, time.March, 1, 9, 30, 0, 0, time.Local), at)
}

func TestStartOfDay(t *testing.T) {
	at := time.Date(2025, time.March, 1, 17, 45, 12, 0, time.Local)
	day := StartOfDay(at)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local), day)
	assert.True(t, SameDay(at, day))
	assert.False(t, SameDay(at, day.AddDate(0, 0, 1)))
}

func TestAgeYears(t *testing.T) {
	birth := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.Local)

	assert.Equal(t, 12, AgeYears(birth, time.Date(2013, time.June, 14, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, 13, AgeYears(birth, time.Date(2013, time.June, 15, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, 13, AgeYears(birth, time.Date(2014, time.June, 14, 0, 0, 0, 0, time.Local)))
}
