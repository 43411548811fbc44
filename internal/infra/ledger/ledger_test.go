//go:build unit

package ledger_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/ledger"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var now = time.Date(2023, time.December, 1, 9, 0, 0, 0, time.UTC)

func newLedger(t *testing.T) (*ledger.Ledger, *room.Catalog, *clock.MockClock) {
	t.Helper()
	catalog, err := builder.DefaultCatalog()
	require.NoError(t, err)

	clk := clock.NewMockClock(now)
	factory := reservation.NewFactory(clk, reservation.NewNightlyPriceCalculator())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ledger.NewLedger(factory, logger), catalog, clk
}

func jan(day int) time.Time {
	return builder.Day(2024, time.January, day)
}

func mustRoom(t *testing.T, catalog *room.Catalog, number int) *room.Room {
	t.Helper()
	r, err := catalog.ByNumber(number)
	require.NoError(t, err)
	return r
}

func TestLedger_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids and prices the stay", func(t *testing.T) {
		l, catalog, _ := newLedger(t)

		first, err := l.Create(ctx, mustRoom(t, catalog, 101), "Alice", jan(1), jan(4))
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.ID())
		assert.Equal(t, "300.00", first.Total().String())
		assert.Equal(t, reservation.StatusPending, first.Status())
		assert.Equal(t, now, first.CreatedAt())

		second, err := l.Create(ctx, mustRoom(t, catalog, 301), "Bob", jan(1), jan(2))
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.ID())
		assert.Equal(t, "300.00", second.Total().String())
	})

	t.Run("overlap is rejected and leaves the ledger unchanged", func(t *testing.T) {
		l, catalog, _ := newLedger(t)
		standard := mustRoom(t, catalog, 101)

		_, err := l.Create(ctx, standard, "Alice", jan(1), jan(4))
		require.NoError(t, err)

		_, err = l.Create(ctx, standard, "Bob", jan(3), jan(6))
		require.ErrorIs(t, err, reservation.ErrRoomUnavailable)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Len(t, l.All(ctx), 1)

		next, err := l.Create(ctx, mustRoom(t, catalog, 102), "Bob", jan(3), jan(6))
		require.NoError(t, err)
		assert.Equal(t, int64(2), next.ID(), "failed create must not consume an id")
	})

	t.Run("same-day turnover is allowed", func(t *testing.T) {
		l, catalog, _ := newLedger(t)
		standard := mustRoom(t, catalog, 101)

		_, err := l.Create(ctx, standard, "Alice", jan(1), jan(4))
		require.NoError(t, err)
		_, err = l.Create(ctx, standard, "Bob", jan(4), jan(6))
		require.NoError(t, err)

		assert.Len(t, l.ByRoom(ctx, 101), 2)
	})

	t.Run("input validation", func(t *testing.T) {
		l, catalog, _ := newLedger(t)
		standard := mustRoom(t, catalog, 101)

		_, err := l.Create(ctx, standard, "Alice", jan(4), jan(4))
		require.ErrorIs(t, err, reservation.ErrInvalidRange)
		assert.True(t, infra.IsKind(err, infra.KindInvalid))

		_, err = l.Create(ctx, standard, "   ", jan(1), jan(4))
		require.ErrorIs(t, err, reservation.ErrInvalidGuest)

		assert.Empty(t, l.All(ctx))
	})

	t.Run("concurrent reservations for one room admit exactly one", func(t *testing.T) {
		l, catalog, _ := newLedger(t)
		suite := mustRoom(t, catalog, 301)

		const attempts = 50
		var succeeded, conflicted atomic.Int32
		var g errgroup.Group
		for i := 0; i < attempts; i++ {
			g.Go(func() error {
				_, err := l.Create(ctx, suite, "Guest", jan(10), jan(12))
				switch {
				case err == nil:
					succeeded.Add(1)
				case infra.IsKind(err, infra.KindConflict):
					conflicted.Add(1)
				default:
					return err
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(1), succeeded.Load())
		assert.Equal(t, int32(attempts-1), conflicted.Load())
		assert.Len(t, l.ByRoom(ctx, 301), 1)
	})
}

func TestLedger_GetAndMarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		l, _, _ := newLedger(t)

		_, err := l.Get(ctx, 42)
		require.ErrorIs(t, err, reservation.ErrReservationNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, _, err = l.MarkPaid(ctx, 42)
		require.ErrorIs(t, err, reservation.ErrReservationNotFound)
	})

	t.Run("mark paid is idempotent", func(t *testing.T) {
		l, catalog, clk := newLedger(t)
		created, err := l.Create(ctx, mustRoom(t, catalog, 201), "Alice", jan(1), jan(3))
		require.NoError(t, err)

		clk.Add(time.Hour)
		paid, changed, err := l.MarkPaid(ctx, created.ID())
		require.NoError(t, err)
		assert.True(t, changed)
		assert.True(t, paid.IsPaid())
		require.NotNil(t, paid.PaidAt())
		assert.Equal(t, now.Add(time.Hour), *paid.PaidAt())

		clk.Add(time.Hour)
		again, changed, err := l.MarkPaid(ctx, created.ID())
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, now.Add(time.Hour), *again.PaidAt())
	})

	t.Run("returned values are copies", func(t *testing.T) {
		l, catalog, _ := newLedger(t)
		created, err := l.Create(ctx, mustRoom(t, catalog, 201), "Alice", jan(1), jan(3))
		require.NoError(t, err)

		created.MarkPaid(now)

		stored, err := l.Get(ctx, created.ID())
		require.NoError(t, err)
		assert.False(t, stored.IsPaid())
	})

	t.Run("concurrent payments settle once", func(t *testing.T) {
		l, catalog, _ := newLedger(t)
		created, err := l.Create(ctx, mustRoom(t, catalog, 202), "Alice", jan(1), jan(3))
		require.NoError(t, err)

		var changedCount atomic.Int32
		var g errgroup.Group
		for i := 0; i < 20; i++ {
			g.Go(func() error {
				_, changed, err := l.MarkPaid(ctx, created.ID())
				if changed {
					changedCount.Add(1)
				}
				return err
			})
		}
		require.NoError(t, g.Wait())
		assert.Equal(t, int32(1), changedCount.Load())
	})
}

func TestLedger_Snapshot(t *testing.T) {
	ctx := context.Background()
	l, catalog, _ := newLedger(t)

	_, err := l.Create(ctx, mustRoom(t, catalog, 101), "Alice", jan(1), jan(4))
	require.NoError(t, err)
	_, err = l.Create(ctx, mustRoom(t, catalog, 301), "Bob", jan(2), jan(3))
	require.NoError(t, err)

	snapshot := l.Snapshot(ctx)
	assert.Len(t, snapshot, 2)
	assert.Len(t, snapshot[101], 1)
	assert.Len(t, snapshot[301], 1)
	assert.Empty(t, snapshot[102])

	all := l.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID())
	assert.Equal(t, int64(2), all[1].ID())
}
