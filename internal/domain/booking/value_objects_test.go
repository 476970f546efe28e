//go:build unit

package booking_test

import (
	"testing"
	"time"

	"courtbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, start, end time.Time) booking.TimeWindow {
	t.Helper()
	w, err := booking.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	base := time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		w, err := booking.NewTimeWindow(base, base.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1.0, w.DurationHours())
	})

	t.Run("end equal to start rejected", func(t *testing.T) {
		_, err := booking.NewTimeWindow(base, base)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("inverted window rejected", func(t *testing.T) {
		_, err := booking.NewTimeWindow(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})

	t.Run("fractional hours", func(t *testing.T) {
		w := window(t, base, base.Add(90*time.Minute))
		assert.Equal(t, 1.5, w.DurationHours())
	})
}

func TestTimeWindowOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC)
	hour := time.Hour

	tests := []struct {
		name string
		a, b booking.TimeWindow
		want bool
	}{
		{
			name: "identical windows overlap",
			a:    window(t, base, base.Add(hour)),
			b:    window(t, base, base.Add(hour)),
			want: true,
		},
		{
			name: "partial overlap",
			a:    window(t, base, base.Add(2*hour)),
			b:    window(t, base.Add(hour), base.Add(3*hour)),
			want: true,
		},
		{
			name: "containment overlaps",
			a:    window(t, base, base.Add(3*hour)),
			b:    window(t, base.Add(hour), base.Add(2*hour)),
			want: true,
		},
		{
			name: "back-to-back windows do not overlap",
			a:    window(t, base, base.Add(hour)),
			b:    window(t, base.Add(hour), base.Add(2*hour)),
			want: false,
		},
		{
			name: "disjoint windows do not overlap",
			a:    window(t, base, base.Add(hour)),
			b:    window(t, base.Add(2*hour), base.Add(3*hour)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestTimeWindowToTstzrange(t *testing.T) {
	start := time.Date(2026, 9, 4, 18, 0, 0, 0, time.UTC)
	w := window(t, start, start.Add(time.Hour))
	assert.Equal(t, "[2026-09-04T18:00:00Z,2026-09-04T19:00:00Z)", w.ToTstzrange())
}
