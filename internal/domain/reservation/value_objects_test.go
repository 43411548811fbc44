//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(t *testing.T, inDay, outDay int) reservation.StayPeriod {
	t.Helper()
	p, err := reservation.NewStayPeriod(builder.Day(2024, time.January, inDay), builder.Day(2024, time.January, outDay))
	require.NoError(t, err)
	return p
}

func TestStayPeriod(t *testing.T) {
	t.Run("nights", func(t *testing.T) {
		assert.Equal(t, 3, period(t, 1, 4).Nights())
		assert.Equal(t, 1, period(t, 10, 11).Nights())
	})

	t.Run("nights and total on a range of several centuries", func(t *testing.T) {
		p, err := reservation.NewStayPeriod(builder.Day(2000, time.January, 1), builder.Day(2400, time.January, 1))
		require.NoError(t, err)
		assert.Equal(t, 146097, p.Nights())

		suite, err := builder.NewRoomBuilder().WithRateCents(30000).BuildDomain()
		require.NoError(t, err)
		total := reservation.NewNightlyPriceCalculator().CalculateTotal(suite, p)
		assert.Equal(t, int64(4382910000), total.Cents())
	})

	t.Run("check-out must follow check-in", func(t *testing.T) {
		day := builder.Day(2024, time.January, 5)
		_, err := reservation.NewStayPeriod(day, day)
		require.ErrorIs(t, err, reservation.ErrInvalidRange)

		_, err = reservation.NewStayPeriod(day, day.AddDate(0, 0, -1))
		require.ErrorIs(t, err, reservation.ErrInvalidRange)
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		in := time.Date(2024, time.January, 1, 15, 30, 0, 0, time.UTC)
		out := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
		p, err := reservation.NewStayPeriod(in, out)
		require.NoError(t, err)
		assert.Equal(t, builder.Day(2024, time.January, 1), p.CheckIn())
		assert.Equal(t, 1, p.Nights())
		assert.Equal(t, "[2024-01-01,2024-01-02)", p.String())
	})

	t.Run("overlap", func(t *testing.T) {
		cases := []struct {
			name     string
			a, b     reservation.StayPeriod
			overlaps bool
		}{
			{name: "identical", a: period(t, 1, 4), b: period(t, 1, 4), overlaps: true},
			{name: "partial", a: period(t, 1, 4), b: period(t, 3, 6), overlaps: true},
			{name: "contained", a: period(t, 1, 10), b: period(t, 3, 4), overlaps: true},
			{name: "same-day turnover", a: period(t, 1, 4), b: period(t, 4, 6), overlaps: false},
			{name: "disjoint", a: period(t, 1, 3), b: period(t, 5, 6), overlaps: false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
				assert.Equal(t, c.overlaps, c.b.Overlaps(c.a))
			})
		}
	})
}

func TestGuestName(t *testing.T) {
	g, err := reservation.NewGuestName("  Alice  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", g.String())

	for _, blank := range []string{"", "   ", "\t"} {
		_, err := reservation.NewGuestName(blank)
		require.ErrorIs(t, err, reservation.ErrInvalidGuest)
	}
}
