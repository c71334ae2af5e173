package bootstrap

import (
	"context"
	"log/slog"

	"tourism-api/internal/infra/cache"
	"tourism-api/internal/pkg/config"
	"tourism-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewStatsCache,
	),
)

// NewStatsCache uses Redis when REDIS_URL is set and a no-op cache otherwise.
func NewStatsCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.StatsCache, error) {
	if cfg.Redis.URL == "" {
		logger.Info("stats cache disabled, REDIS_URL not set")
		return cache.NoopStatsCache{}, nil
	}

	client, err := cache.Connect(context.Background(), cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("stats cache connected", "ttl", cfg.Redis.StatsCacheTTL)
	return cache.NewRedisStatsCache(client, cfg.Redis.StatsCacheTTL), nil
}
