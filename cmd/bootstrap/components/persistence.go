package components

import (
	"courtside/internal/infra/readstore"
	sqlc "courtside/internal/infra/sqlc/generated"
	"courtside/internal/infra/uow"
	"courtside/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Slot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotViewQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Match
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MatchViewQueries)),
		),
		fx.Annotate(
			readstore.NewMatchReadStore,
			fx.As(new(queries.MatchReadStore)),
		),
	),
)

// write repositories are built per transaction inside the unit of work
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
