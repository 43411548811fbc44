package queries

import (
	"context"
	"strings"
	"time"

	"hotel-booking/internal/domain/reservation"
)

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	// SearchAvailableRooms returns rooms in catalog order that are free for
	// [checkIn, checkOut) and, when category is set, match it ignoring case.
	SearchAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, category *string) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	catalog RoomCatalog
	store   ReservationReadStore
}

func NewRoomQueries(catalog RoomCatalog, store ReservationReadStore) RoomQueries {
	return &roomQueriesImpl{catalog: catalog, store: store}
}

func (q *roomQueriesImpl) ListRooms(_ context.Context) ([]*RoomView, error) {
	rooms := q.catalog.All()
	views := make([]*RoomView, 0, len(rooms))
	for _, r := range rooms {
		views = append(views, NewRoomView(r))
	}
	return views, nil
}

func (q *roomQueriesImpl) SearchAvailableRooms(
	ctx context.Context,
	checkIn, checkOut time.Time,
	category *string,
) ([]*RoomView, error) {
	period, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	// An empty filter means every category.
	if category != nil && strings.TrimSpace(*category) == "" {
		category = nil
	}

	snapshot := q.store.Snapshot(ctx)

	views := make([]*RoomView, 0)
	for _, r := range q.catalog.All() {
		if category != nil && !r.Category().Matches(*category) {
			continue
		}
		if !reservation.IsFree(r.Number(), period, snapshot[r.Number()]) {
			continue
		}
		views = append(views, NewRoomView(r))
	}
	return views, nil
}
