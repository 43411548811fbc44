//go:build unit

package room_test

import (
	"testing"

	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/room"
	"hotel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 101, r.Number())
		assert.Equal(t, room.CategoryStandard, r.Category())
		assert.Equal(t, "100.00", r.Rate().String())
	})

	cases := []struct {
		name   string
		mutate func(*builder.RoomBuilder)
		errIs  error
	}{
		{name: "zero number", mutate: func(b *builder.RoomBuilder) { b.WithNumber(0) }, errIs: room.ErrInvalidRoomNumber},
		{name: "unknown category", mutate: func(b *builder.RoomBuilder) { b.WithCategory("Penthouse") }, errIs: room.ErrInvalidCategory},
		{name: "zero rate", mutate: func(b *builder.RoomBuilder) { b.WithRateCents(0) }, errIs: room.ErrNonPositiveRate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := builder.NewRoomBuilder().With(c.mutate).BuildDomain()
			require.Nil(t, r)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestCategory(t *testing.T) {
	t.Run("parse ignores case", func(t *testing.T) {
		c, err := room.ParseCategory("deluxe")
		require.NoError(t, err)
		assert.Equal(t, room.CategoryDeluxe, c)
	})

	t.Run("matches ignores case and spaces", func(t *testing.T) {
		assert.True(t, room.CategorySuite.Matches("suite"))
		assert.True(t, room.CategorySuite.Matches(" SUITE "))
		assert.False(t, room.CategorySuite.Matches("Deluxe"))
	})
}

func TestCatalog(t *testing.T) {
	t.Run("seeded catalog keeps order", func(t *testing.T) {
		catalog, err := builder.DefaultCatalog()
		require.NoError(t, err)
		require.Equal(t, 5, catalog.Len())

		var numbers []int
		for _, r := range catalog.All() {
			numbers = append(numbers, r.Number())
		}
		assert.Equal(t, []int{101, 102, 201, 202, 301}, numbers)

		suite, err := catalog.ByNumber(301)
		require.NoError(t, err)
		assert.Equal(t, room.CategorySuite, suite.Category())
		assert.Equal(t, int64(30000), suite.Rate().Cents())
	})

	t.Run("All returns a copy", func(t *testing.T) {
		catalog, err := builder.DefaultCatalog()
		require.NoError(t, err)

		rooms := catalog.All()
		rooms[0] = nil
		assert.NotNil(t, catalog.All()[0])
	})

	t.Run("unknown room", func(t *testing.T) {
		catalog, err := builder.DefaultCatalog()
		require.NoError(t, err)

		_, err = catalog.ByNumber(999)
		require.ErrorIs(t, err, room.ErrRoomNotFound)
	})

	t.Run("duplicate numbers are rejected", func(t *testing.T) {
		a, err := room.NewRoom(101, room.CategoryStandard, money.NewMoney(100))
		require.NoError(t, err)
		b, err := room.NewRoom(101, room.CategoryDeluxe, money.NewMoney(200))
		require.NoError(t, err)

		_, err = room.NewCatalog([]*room.Room{a, b})
		require.ErrorIs(t, err, room.ErrDuplicateRoomNumber)
	})

	t.Run("invalid seeds", func(t *testing.T) {
		cases := []struct {
			name string
			seed room.Seed
		}{
			{name: "non-positive number", seed: room.Seed{Number: 0, Category: "Standard", PricePerNight: "100.00"}},
			{name: "unknown category", seed: room.Seed{Number: 1, Category: "Loft", PricePerNight: "100.00"}},
			{name: "missing price", seed: room.Seed{Number: 1, Category: "Standard"}},
			{name: "non-numeric price", seed: room.Seed{Number: 1, Category: "Standard", PricePerNight: "abc"}},
			{name: "zero price", seed: room.Seed{Number: 1, Category: "Standard", PricePerNight: "0"}},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				catalog, err := room.NewCatalogFromSeeds([]room.Seed{c.seed})
				require.Error(t, err)
				assert.Nil(t, catalog)
			})
		}
	})
}
