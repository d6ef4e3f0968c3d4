package redis

import (
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/alicebob/miniredis/v2"
	r "github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *clients.RedisClient, *cfg.RedisCfg) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := clients.WrapRedisClient(r.NewClient(&r.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })

	return mr, client, &cfg.RedisCfg{
		CatalogTTL: time.Minute,
		StorageTTL: time.Hour,
	}
}
