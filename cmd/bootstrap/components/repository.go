package components

import (
	"tablestay/internal/infra/cache"
	"tablestay/internal/infra/db"
	"tablestay/internal/infra/readstore"
	"tablestay/internal/infra/writerepo"
	"tablestay/internal/pkg/config"
	"tablestay/internal/usecase"
	"tablestay/internal/usecase/commands"
	"tablestay/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			func(pool db.DBTX, cfg config.Config) *readstore.BookingReadStore {
				return readstore.NewBookingReadStore(pool, cfg.Store.Timeout)
			},
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			func(pool db.DBTX, cfg config.Config) *readstore.BlockedDateReadStore {
				return readstore.NewBlockedDateReadStore(pool, cfg.Store.Timeout)
			},
			fx.As(new(queries.BlockedDateReadStore)),
		),
		fx.Annotate(
			func(pool db.DBTX, cfg config.Config) *readstore.ListingReadStore {
				return readstore.NewListingReadStore(pool, cfg.Store.Timeout)
			},
			fx.As(new(queries.ListingExistenceStore)),
			fx.As(new(commands.ListingRepository)),
		),
		fx.Annotate(
			func(pool db.DBTX, cfg config.Config) *readstore.UserReadStore {
				return readstore.NewUserReadStore(pool, cfg.Store.Timeout)
			},
			fx.As(new(usecase.UserRepository)),
		),

		// Write side
		fx.Annotate(
			func(pool db.DBTX, cfg config.Config) *writerepo.BookingWriteRepository {
				return writerepo.NewBookingWriteRepository(pool, cfg.Store.Timeout)
			},
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			func(pool db.DBTX, cfg config.Config) *writerepo.AvailabilityReader {
				return writerepo.NewAvailabilityReader(pool, cfg.Store.Timeout)
			},
			fx.As(new(commands.AvailabilityReader)),
		),

		// Cache
		fx.Annotate(
			func(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
				return cache.NewAvailabilityCache(client, cfg.Redis.CacheTTL)
			},
			fx.As(new(queries.AvailabilityCache)),
		),
	),
)
