package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
)

// Ledger is the in-memory store of every reservation and the single source
// of truth for availability. Mutations are serialised by mu so the overlap
// check and the append in Create are atomic; readers share the read lock and
// only ever receive copies.
type Ledger struct {
	mu           sync.RWMutex
	factory      *reservation.Factory
	logger       *slog.Logger
	reservations []*reservation.Reservation
	byID         map[int64]*reservation.Reservation
	byRoom       map[int][]*reservation.Reservation
	nextID       int64
}

func NewLedger(factory *reservation.Factory, logger *slog.Logger) *Ledger {
	return &Ledger{
		factory: factory,
		logger:  logger,
		byID:    make(map[int64]*reservation.Reservation),
		byRoom:  make(map[int][]*reservation.Reservation),
		nextID:  1,
	}
}

// Create re-checks availability under the write lock and appends a new pending
// reservation. On any failure the ledger and the id sequence are unchanged.
func (l *Ledger) Create(
	ctx context.Context,
	roomEntity *room.Room,
	guestName string,
	checkIn, checkOut time.Time,
) (*reservation.Reservation, error) {
	period, err := reservation.NewStayPeriod(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr(ctx, l.logger, infra.KindInvalid, "invalid stay period", err,
			slog.Int("room_number", roomEntity.Number()))
	}

	guest, err := reservation.NewGuestName(guestName)
	if err != nil {
		return nil, infra.WrapRepoErr(ctx, l.logger, infra.KindInvalid, "invalid guest", err,
			slog.Int("room_number", roomEntity.Number()))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !reservation.IsFree(roomEntity.Number(), period, l.byRoom[roomEntity.Number()]) {
		return nil, infra.WrapRepoErr(ctx, l.logger, infra.KindConflict, "stay period overlaps an existing reservation",
			reservation.ErrRoomUnavailable,
			slog.Int("room_number", roomEntity.Number()),
			slog.String("period", period.String()))
	}

	res, err := l.factory.CreateReservation(l.nextID, roomEntity, guest, period)
	if err != nil {
		return nil, infra.WrapRepoErr(ctx, l.logger, infra.KindInvalid, "failed to build reservation", err,
			slog.Int("room_number", roomEntity.Number()))
	}

	l.nextID++
	l.reservations = append(l.reservations, res)
	l.byID[res.ID()] = res
	l.byRoom[res.RoomNumber()] = append(l.byRoom[res.RoomNumber()], res)

	return res.Clone(), nil
}

func (l *Ledger) Get(ctx context.Context, id int64) (*reservation.Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	res, ok := l.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(ctx, l.logger, infra.KindNotFound, "reservation not found",
			reservation.ErrReservationNotFound, slog.Int64("reservation_id", id))
	}
	return res.Clone(), nil
}

// MarkPaid settles a reservation. changed is false when it was already paid,
// which is not an error.
func (l *Ledger) MarkPaid(ctx context.Context, id int64) (res *reservation.Reservation, changed bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored, ok := l.byID[id]
	if !ok {
		return nil, false, infra.WrapRepoErr(ctx, l.logger, infra.KindNotFound, "reservation not found",
			reservation.ErrReservationNotFound, slog.Int64("reservation_id", id))
	}

	changed = stored.MarkPaid(l.factory.Clock.Now())
	return stored.Clone(), changed, nil
}

// All returns every reservation in creation order.
func (l *Ledger) All(_ context.Context) []*reservation.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return cloneAll(l.reservations)
}

func (l *Ledger) ByRoom(_ context.Context, roomNumber int) []*reservation.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return cloneAll(l.byRoom[roomNumber])
}

// Snapshot returns every room's reservations taken under a single read lock,
// so availability computed from it is consistent across rooms.
func (l *Ledger) Snapshot(_ context.Context) map[int][]*reservation.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snapshot := make(map[int][]*reservation.Reservation, len(l.byRoom))
	for number, list := range l.byRoom {
		snapshot[number] = cloneAll(list)
	}
	return snapshot
}

func cloneAll(list []*reservation.Reservation) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(list))
	for i, r := range list {
		out[i] = r.Clone()
	}
	return out
}
