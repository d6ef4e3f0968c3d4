package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// CatalogUseCase отдаёт каталог внешнего API с кэшем, санитизацией изображений и фильтрами.
type CatalogUseCase struct {
	api    StoreAPI
	cache  CatalogCache
	images domain.ImagePolicy
	logger logger.Logger
}

func NewCatalogUC(api StoreAPI, cache CatalogCache, images domain.ImagePolicy, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		api:    api,
		cache:  cache,
		images: images,
		logger: logger,
	}
}

// ListProducts параллельно получает товары и категории (ошибка любого запроса проваливает весь вызов)
// и применяет к товарам фильтр, сортировку и поиск.
func (c *CatalogUseCase) ListProducts(ctx context.Context, filter domain.ProductFilter) (*CatalogRes, error) {
	const op = "CatalogUseCase.ListProducts"

	if !domain.IsKnownSort(filter.Sort) || filter.Offset < 0 || filter.Limit < 0 {
		return nil, e.Wrap(op, e.ErrInvalidFilter)
	}
	if filter.PriceMin != nil && filter.PriceMax != nil && filter.PriceMin.GreaterThan(*filter.PriceMax) {
		return nil, e.Wrap(op, e.ErrInvalidFilter)
	}

	var (
		products   []domain.Product
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = c.allProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = c.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, e.Wrap(op, err)
	}

	res := domain.ApplyFilter(products, filter)

	return &CatalogRes{
		Products:   res.Products,
		Categories: categories,
		Total:      res.Total,
	}, nil
}

// GetProduct ищет товар сначала в кэше, затем во внешнем API.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	if id <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidID)
	}

	cached, err := c.cache.GetProducts(ctx, []int64{id})
	if err == nil {
		if product, ok := cached[id]; ok {
			return &product, nil
		}
	}

	product, err := c.api.GetProduct(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	c.sanitizeProduct(product)

	// Фоновое добавление товара в кэш
	toCache := *product
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cache.SetProducts(bgCtx, []domain.Product{toCache}); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}

// ListCategories возвращает категории из кэша или внешнего API.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	if categories, ok := c.cache.GetCategories(ctx); ok {
		return categories, nil
	}

	categories, err := c.api.ListCategories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range categories {
		categories[i].Image = c.images.SanitizeOne(categories[i].Image)
	}

	if err := c.cache.SetCategories(ctx, categories); err != nil {
		c.logger.Warnf("Failed to cache categories: %v", e.Wrap(op, err))
	}

	return categories, nil
}

// InvalidateProducts сбрасывает кэш каталога после изменений в админке.
func (c *CatalogUseCase) InvalidateProducts(ctx context.Context, ids ...int64) {
	if err := c.cache.Invalidate(ctx, ids...); err != nil {
		c.logger.Warnf("Failed to invalidate catalog cache: %v", e.Wrap("CatalogUseCase.InvalidateProducts", err))
	}
}

// InvalidateCatalog сбрасывает весь кэш каталога, включая товары по ID.
func (c *CatalogUseCase) InvalidateCatalog(ctx context.Context) {
	if err := c.cache.InvalidateAll(ctx); err != nil {
		c.logger.Warnf("Failed to invalidate catalog cache: %v", e.Wrap("CatalogUseCase.InvalidateCatalog", err))
	}
}

func (c *CatalogUseCase) allProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.allProducts"

	if products, ok := c.cache.GetProductList(ctx); ok {
		return products, nil
	}

	products, err := c.api.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range products {
		c.sanitizeProduct(&products[i])
	}

	if err := c.cache.SetProductList(ctx, products); err != nil {
		c.logger.Warnf("Failed to cache product list: %v", e.Wrap(op, err))
	}

	return products, nil
}

func (c *CatalogUseCase) sanitizeProduct(p *domain.Product) {
	p.Images = c.images.Sanitize(p.Images)
	p.Category.Image = c.images.SanitizeOne(p.Category.Image)
}
