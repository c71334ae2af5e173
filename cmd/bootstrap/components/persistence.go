package components

import (
	"log/slog"
	"time"

	"tourism-api/internal/infra/memstore"
	"tourism-api/internal/infra/readstore"
	"tourism-api/internal/infra/repository"
	"tourism-api/internal/infra/uow"
	"tourism-api/internal/pkg/config"
	"tourism-api/internal/usecase/queries"
	"tourism-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

type Stores struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	Reservations queries.ReservationReadStore
	Stats        queries.StatsReadStore
	Outbox       shared.OutboxStore
}

// NewStores picks the implementation named by STORE_DRIVER.
func NewStores(cfg config.Config, pool *pgxpool.Pool, loc *time.Location, logger *slog.Logger) Stores {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("using the in-memory store, data is lost on restart")
		store := memstore.New(loc)
		return Stores{
			UnitOfWork:   store,
			Reservations: store,
			Stats:        store,
			Outbox:       store,
		}
	}

	return Stores{
		UnitOfWork:   uow.NewPostgresUoW(pool, loc),
		Reservations: readstore.NewReservationReadStore(pool, loc),
		Stats:        readstore.NewStatsReadStore(pool),
		Outbox:       repository.NewOutboxRepository(pool),
	}
}
