package queries

import (
	"context"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	catalog RoomCatalog
	store   ReservationReadStore
}

func NewReservationQueries(catalog RoomCatalog, store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{catalog: catalog, store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	res, err := q.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	roomEntity, err := q.catalog.ByNumber(res.RoomNumber())
	if err != nil {
		// Reservations only reference catalog rooms; render without a category otherwise.
		roomEntity = nil
	}
	return NewReservationView(res, roomEntity), nil
}
