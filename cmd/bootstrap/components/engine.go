package components

import (
	"log/slog"

	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra/ledger"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	engineBaseOption,
	catalogModule,
	ledgerModule,
)

var engineBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewNightlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
	fx.Annotate(
		payment.NewLocalAuthorizer,
		fx.As(new(payment.Authorizer)),
	),
)

var catalogModule = fx.Module("engine/catalog",
	fx.Provide(
		fx.Annotate(
			NewCatalog,
			fx.As(new(queries.RoomCatalog)),
			fx.As(new(commands.RoomCatalog)),
		),
	),
)

var ledgerModule = fx.Module("engine/ledger",
	fx.Provide(
		fx.Annotate(
			NewLedger,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(commands.ReservationLedger)),
		),
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*room.Catalog, error) {
	seeds := make([]room.Seed, 0, len(cfg.Hotel.Rooms))
	for _, s := range cfg.Hotel.Rooms {
		seeds = append(seeds, room.Seed{
			Number:        s.Number,
			Category:      s.Category,
			PricePerNight: s.PricePerNight,
		})
	}

	catalog, err := room.NewCatalogFromSeeds(seeds)
	if err != nil {
		return nil, err
	}
	logger.Info("room catalog loaded", "rooms", catalog.Len())
	return catalog, nil
}

func NewLedger(factory *reservation.Factory, logger *slog.Logger) *ledger.Ledger {
	return ledger.NewLedger(factory, logger.With("component", "ledger"))
}
