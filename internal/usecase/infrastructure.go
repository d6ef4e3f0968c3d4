package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// StoreAPI — клиент внешнего REST API. Токен пользователя передаётся через bearer.WithToken.
type StoreAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)

	Login(ctx context.Context, email, password string) (*domain.Tokens, error)
	Profile(ctx context.Context) (*domain.User, error)
	RegisterUser(ctx context.Context, req *RegisterUserReq) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, req *UpdateUserReq) (*domain.User, error)

	CreateProduct(ctx context.Context, in *ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, in *ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, in *CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, in *CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event StorefrontEvent) error
}

// EventSubscriber подписывает на события браузера (sid) и аккаунта (email).
// Возвращённую функцию нужно вызвать для отписки.
type EventSubscriber interface {
	Subscribe(ctx context.Context, sid, email string) (<-chan StorefrontEvent, func(), error)
}

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
