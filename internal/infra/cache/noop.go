package cache

import "context"

// NoopStatsCache never hits. Used when REDIS_URL is not set.
type NoopStatsCache struct{}

func (NoopStatsCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (NoopStatsCache) Set(context.Context, string, any) error { return nil }

func (NoopStatsCache) Delete(context.Context, ...string) error { return nil }
