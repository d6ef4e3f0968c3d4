package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// StorageRepository повторяет localStorage витрины.
// sid определяет браузер для ключей без email.
type StorageRepository interface {
	Get(ctx context.Context, sid string, key domain.StorageKey, dst any) (bool, error)
	Set(ctx context.Context, sid string, key domain.StorageKey, value any) error
	Delete(ctx context.Context, sid string, keys ...domain.StorageKey) error
}

// CatalogCache кэширует ответы внешнего API.
type CatalogCache interface {
	GetProductList(ctx context.Context) ([]domain.Product, bool)
	SetProductList(ctx context.Context, products []domain.Product) error
	GetProducts(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	GetCategories(ctx context.Context) ([]domain.Category, bool)
	SetCategories(ctx context.Context, categories []domain.Category) error
	Invalidate(ctx context.Context, productIDs ...int64) error
	InvalidateAll(ctx context.Context) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	ResetStuck(ctx context.Context, olderThanSeconds int) (int64, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

// Transactor выполняет fn в транзакции БД; транзакция доступна репозиториям через ctx.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
