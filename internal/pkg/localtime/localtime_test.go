//go:build unit

package localtime_test

import (
	"testing"
	"time"

	"courtbook/internal/pkg/localtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := localtime.Load(name)
	require.NoError(t, err)
	return loc
}

func TestParse(t *testing.T) {
	ist := mustLoad(t, "Asia/Kolkata")

	tests := []struct {
		name  string
		input string
		want  time.Time
		err   error
	}{
		{
			name:  "naive timestamp anchored to business zone",
			input: "2026-09-05T18:00:00",
			want:  time.Date(2026, 9, 5, 18, 0, 0, 0, ist),
		},
		{
			name:  "naive timestamp without seconds",
			input: "2026-09-05T18:00",
			want:  time.Date(2026, 9, 5, 18, 0, 0, 0, ist),
		},
		{
			name:  "zoned timestamp converted, not re-anchored",
			input: "2026-09-05T12:30:00Z",
			want:  time.Date(2026, 9, 5, 18, 0, 0, 0, ist),
		},
		{
			name:  "explicit offset preserved",
			input: "2026-09-05T18:00:00+05:30",
			want:  time.Date(2026, 9, 5, 18, 0, 0, 0, ist),
		},
		{
			name:  "garbage rejected",
			input: "next tuesday",
			err:   localtime.ErrUnparsableTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := localtime.Parse(tt.input, ist)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestDayBounds(t *testing.T) {
	ist := mustLoad(t, "Asia/Kolkata")

	// 01:00 IST on the 6th is still the 5th in UTC; bounds must follow IST.
	instant := time.Date(2026, 9, 6, 1, 0, 0, 0, ist)
	start, end := localtime.DayBounds(instant, ist)

	assert.Equal(t, time.Date(2026, 9, 6, 0, 0, 0, 0, ist), start)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, ist), end)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestParseDate(t *testing.T) {
	ist := mustLoad(t, "Asia/Kolkata")

	day, err := localtime.ParseDate("2026-09-05", ist)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, ist), day)

	_, err = localtime.ParseDate("05/09/2026", ist)
	assert.ErrorIs(t, err, localtime.ErrUnparsableTime)
}
