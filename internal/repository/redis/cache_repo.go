package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	productListKey     = "catalog:products"
	categoriesKey      = "catalog:categories"
	productKeyPattern  = "catalog:product:*"
	invalidateScanSize = 500
)

// CacheRepo кэширует ответы внешнего API: весь список товаров, отдельные товары и категории.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProductList возвращает закэшированный список товаров; любая ошибка считается промахом.
func (c *CacheRepo) GetProductList(ctx context.Context) ([]domain.Product, bool) {
	var models []converter.ProductRedisModel
	if !c.getJSON(ctx, productListKey, &models) {
		return nil, false
	}

	return c.conv.ToArrDomainProduct(models), true
}

func (c *CacheRepo) SetProductList(ctx context.Context, products []domain.Product) error {
	return c.setJSON(ctx, productListKey, c.conv.ToArrRedisProduct(products))
}

// GetProducts возвращает закэшированные товары по ID, игнорируя промахи и логируя их
func (c *CacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	if len(ids) == 0 {
		return map[int64]domain.Product{}, nil
	}

	keys := c.buildProductCacheKeys(ids)

	values, err := c.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make(map[int64]domain.Product, len(values))
	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			c.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		}

		if data == nil {
			continue // cache miss
		}

		var model converter.ProductRedisModel
		if err := json.Unmarshal(data, &model); err != nil {
			c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		if model.ID != ids[i] {
			c.logger.Warnf("Cache ID mismatch: key_id: %d, model_id: %d", ids[i], model.ID)
			if err := c.client.Client.Del(context.Background(), keys[i]).Err(); err != nil {
				c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue // cache miss
		}
		result[ids[i]] = c.conv.ToDomainProduct(model)
	}

	return result, nil
}

// SetProducts кэширует несколько товаров одним pipeline с TTL каталога.
// Ошибки сериализации/записи только логируются.
func (c *CacheRepo) SetProducts(ctx context.Context, products []domain.Product) error {
	models := c.conv.ToArrRedisProduct(products)

	pipeline := c.client.Client.Pipeline()
	for _, model := range models {
		data, err := json.Marshal(model)
		if err != nil {
			c.logger.Warnf("Failed to marshal product for caching (Product ID: %d): %v", model.ID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		pipeline.Set(ctx, c.productKey(model.ID), data, c.cfg.CatalogTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		c.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

func (c *CacheRepo) GetCategories(ctx context.Context) ([]domain.Category, bool) {
	var models []converter.CategoryRedisModel
	if !c.getJSON(ctx, categoriesKey, &models) {
		return nil, false
	}

	return c.conv.ToArrDomainCategory(models), true
}

func (c *CacheRepo) SetCategories(ctx context.Context, categories []domain.Category) error {
	return c.setJSON(ctx, categoriesKey, c.conv.ToArrRedisCategory(categories))
}

// Invalidate сбрасывает списки каталога и указанные товары.
func (c *CacheRepo) Invalidate(ctx context.Context, ids ...int64) error {
	keys := append([]string{productListKey, categoriesKey}, c.buildProductCacheKeys(ids)...)

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// InvalidateAll сбрасывает весь каталог, включая закэшированные товары по ID.
func (c *CacheRepo) InvalidateAll(ctx context.Context) error {
	keys := []string{productListKey, categoriesKey}

	iter := c.client.Client.Scan(ctx, 0, productKeyPattern, invalidateScanSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warnf("Redis SCAN failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	pipeline := c.client.Client.Pipeline()
	for start := 0; start < len(keys); start += invalidateScanSize {
		end := min(start+invalidateScanSize, len(keys))
		pipeline.Del(ctx, keys[start:end]...)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) getJSON(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err != r.Nil {
			c.logger.Warnf("Redis GET %s failed: %v", key, e.Wrap(whereami.WhereAmI(), err))
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warnf("Redis unmarshal %s failed: %v", key, e.Wrap(whereami.WhereAmI(), err))
		return false
	}

	return true
}

func (c *CacheRepo) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, key, data, c.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// buildProductCacheKeys формирует Redis-ключи из ID товаров
func (c *CacheRepo) buildProductCacheKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.productKey(id)
	}

	return keys
}

func (c *CacheRepo) productKey(id int64) string {
	return fmt.Sprintf("catalog:product:%d", id)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
