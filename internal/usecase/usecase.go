package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) (*CatalogRes, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type AuthUC interface {
	Login(ctx context.Context, sess domain.Session, email, password string) (*LoginRes, error)
	AdminLogin(ctx context.Context, sess domain.Session, email, password string) (*LoginRes, error)
	Register(ctx context.Context, req *RegisterUserReq) (*domain.User, error)
	Logout(ctx context.Context, sess domain.Session) error
}

type CartUC interface {
	Get(ctx context.Context, sess domain.Session) (*CartView, error)
	Add(ctx context.Context, sess domain.Session, productID int64, qty int) (*CartView, error)
	UpdateQuantity(ctx context.Context, sess domain.Session, productID int64, qty int) (*CartView, error)
	Remove(ctx context.Context, sess domain.Session, productID int64) (*CartView, error)
	Clear(ctx context.Context, sess domain.Session) error
}

type CheckoutUC interface {
	Begin(ctx context.Context, sess domain.Session) (*domain.PendingOrder, error)
	Confirm(ctx context.Context, sess domain.Session) (*domain.Order, error)
	Receipt(ctx context.Context, sess domain.Session) (*domain.Order, error)
	Orders(ctx context.Context, sess domain.Session) ([]domain.Order, error)
}

type FavoriteUC interface {
	List(ctx context.Context, sess domain.Session) (domain.Favorites, error)
	Toggle(ctx context.Context, sess domain.Session, productID int64) (domain.Favorites, bool, error)
	Remove(ctx context.Context, sess domain.Session, productID int64) (domain.Favorites, error)
}

type ProfileUC interface {
	Profile(ctx context.Context, sess domain.Session) (*domain.User, error)
	UpdateProfile(ctx context.Context, sess domain.Session, req *UpdateUserReq) (*domain.User, error)
	Settings(ctx context.Context, sess domain.Session) (*domain.UserSettings, error)
	SaveSettings(ctx context.Context, sess domain.Session, settings domain.UserSettings) (*domain.UserSettings, error)
}

type AdminUC interface {
	CreateProduct(ctx context.Context, sess domain.Session, in *ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, sess domain.Session, id int64, in *ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, sess domain.Session, id int64) error
	CreateCategory(ctx context.Context, sess domain.Session, in *CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, sess domain.Session, id int64, in *CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, sess domain.Session, id int64) error
	UploadImages(ctx context.Context, sess domain.Session, folder string, images []ProductImage) (*UploadImagesRes, error)
}

type EventsUC interface {
	Subscribe(ctx context.Context, sess domain.Session) (<-chan StorefrontEvent, func(), error)
}
