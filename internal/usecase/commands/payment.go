package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"
)

type PaymentOutcome string

const (
	OutcomeSuccess             PaymentOutcome = "success"
	OutcomeAlreadyPaid         PaymentOutcome = "already_paid"
	OutcomeDeclined            PaymentOutcome = "declined"
	OutcomeReservationNotFound PaymentOutcome = "reservation_not_found"
)

type PayParams struct {
	ReservationID int64
	Method        string
	CardNumber    string
	ExpiryMonth   int
	ExpiryYear    int
}

type PaymentResult struct {
	Outcome       PaymentOutcome
	Reservation   *queries.ReservationView
	DeclineReason payment.DeclineReason
}

// Err maps the failure outcomes to their sentinel errors. Success and
// AlreadyPaid return nil.
func (r *PaymentResult) Err() error {
	switch r.Outcome {
	case OutcomeDeclined:
		return errs.ErrPaymentDeclined
	case OutcomeReservationNotFound:
		return errs.ErrReservationNotFound
	default:
		return nil
	}
}

type PaymentCommands interface {
	Pay(ctx context.Context, params PayParams) (*PaymentResult, error)
}

type paymentCommandsImpl struct {
	catalog    RoomCatalog
	ledger     ReservationLedger
	authorizer payment.Authorizer
	logger     *slog.Logger
}

func NewPaymentCommands(
	catalog RoomCatalog,
	ledger ReservationLedger,
	authorizer payment.Authorizer,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		catalog:    catalog,
		ledger:     ledger,
		authorizer: authorizer,
		logger:     logger,
	}
}

// Pay settles a reservation at most once. The returned error is reserved for
// unexpected failures; every expected result is an Outcome.
func (c *paymentCommandsImpl) Pay(ctx context.Context, params PayParams) (*PaymentResult, error) {
	res, err := c.ledger.Get(ctx, params.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &PaymentResult{Outcome: OutcomeReservationNotFound}, nil
		}
		return nil, errs.Wrap(err, "failed to load reservation")
	}

	if res.IsPaid() {
		return c.result(OutcomeAlreadyPaid, res, payment.ReasonNone), nil
	}

	decision := c.authorizer.Authorize(res.Total(), payment.Instrument{
		Method:      params.Method,
		CardNumber:  params.CardNumber,
		ExpiryMonth: params.ExpiryMonth,
		ExpiryYear:  params.ExpiryYear,
	})
	if !decision.Authorized {
		c.logger.WarnContext(ctx, "payment declined",
			slog.Int64("reservation_id", res.ID()),
			slog.String("reason", string(decision.Reason)),
		)
		return c.result(OutcomeDeclined, res, decision.Reason), nil
	}

	paid, changed, err := c.ledger.MarkPaid(ctx, res.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to mark reservation paid")
	}
	if !changed {
		// A concurrent payment settled it between Get and MarkPaid.
		return c.result(OutcomeAlreadyPaid, paid, payment.ReasonNone), nil
	}

	c.logger.InfoContext(ctx, "payment authorized",
		slog.Int64("reservation_id", paid.ID()),
		slog.String("amount", paid.Total().String()),
	)
	return c.result(OutcomeSuccess, paid, payment.ReasonNone), nil
}

func (c *paymentCommandsImpl) result(
	outcome PaymentOutcome,
	res *reservation.Reservation,
	reason payment.DeclineReason,
) *PaymentResult {
	var roomEntity *room.Room
	if r, err := c.catalog.ByNumber(res.RoomNumber()); err == nil {
		roomEntity = r
	}
	return &PaymentResult{
		Outcome:       outcome,
		Reservation:   queries.NewReservationView(res, roomEntity),
		DeclineReason: reason,
	}
}
