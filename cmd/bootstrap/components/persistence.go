package components

import (
	"courtbook/internal/infra/db"
	"courtbook/internal/infra/readstore"
	"courtbook/internal/infra/writerepo"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writerepoModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Court
		fx.Annotate(
			readstore.NewCourtReadStore,
			fx.As(new(commands.CourtRepository)),
			fx.As(new(queries.CourtReader)),
		),
		// Coach
		fx.Annotate(
			readstore.NewCoachReadStore,
			fx.As(new(commands.CoachRepository)),
			fx.As(new(queries.CoachReader)),
		),
		// Equipment
		fx.Annotate(
			readstore.NewEquipmentReadStore,
			fx.As(new(commands.EquipmentRepository)),
			fx.As(new(queries.EquipmentReader)),
		),
		// Pricing rules
		fx.Annotate(
			readstore.NewPricingRuleReadStore,
			fx.As(new(commands.PricingRuleRepository)),
			fx.As(new(queries.PricingRuleReader)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Catalog list queries
		readstore.NewCourtReadStore,
		readstore.NewCoachReadStore,
		readstore.NewEquipmentReadStore,
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)

var writerepoModule = fx.Module("persistence/writerepo",
	fx.Provide(
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
