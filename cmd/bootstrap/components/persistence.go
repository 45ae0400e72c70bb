package components

import (
	"campground/internal/infra/db"
	"campground/internal/infra/readstore"
	"campground/internal/infra/uow"
	"campground/internal/usecase/commands"
	"campground/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork (constructor already returns the shared interface)
		uow.NewPostgresUoW,
		// Reservation views
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Availability views
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Dashboard aggregation rows
		fx.Annotate(
			readstore.NewMetricsReadStore,
			fx.As(new(queries.MetricsReadStore)),
		),
		// Extras catalog
		fx.Annotate(
			readstore.NewExtraReadStore,
			fx.As(new(commands.ExtraCatalog)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
