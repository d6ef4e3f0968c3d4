package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const storagePrefix = "storefront:ls:"

// StorageRepo хранит ключи витрины (аналог localStorage) в Redis.
// Ключи браузера живут под sid, ключи аккаунта общие для всех браузеров.
// Блокировок нет: последняя запись побеждает.
type StorageRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewStorageRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *StorageRepo {
	return &StorageRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Get читает значение в dst. Повреждённый JSON логируется и считается отсутствующим значением.
func (s *StorageRepo) Get(ctx context.Context, sid string, key domain.StorageKey, dst any) (bool, error) {
	redisKey, err := s.redisKey(sid, key)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := s.client.Client.Get(ctx, redisKey).Bytes()
	if errors.Is(err, r.Nil) {
		return false, nil
	}
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warnf("malformed value under %s, treating as empty: %v", key, err)
		return false, nil
	}

	return true, nil
}

func (s *StorageRepo) Set(ctx context.Context, sid string, key domain.StorageKey, value any) error {
	redisKey, err := s.redisKey(sid, key)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, redisKey, data, s.cfg.StorageTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *StorageRepo) Delete(ctx context.Context, sid string, keys ...domain.StorageKey) error {
	if len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		redisKey, err := s.redisKey(sid, key)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		redisKeys = append(redisKeys, redisKey)
	}

	if err := s.client.Client.Del(ctx, redisKeys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// redisKey: storefront:ls:<key> для ключей аккаунта, storefront:ls:<sid>:<key> для ключей браузера.
func (s *StorageRepo) redisKey(sid string, key domain.StorageKey) (string, error) {
	if key.AccountScoped {
		return storagePrefix + key.Name, nil
	}
	if sid == "" {
		return "", e.ErrUnauthorized
	}

	return storagePrefix + sid + ":" + key.Name, nil
}
