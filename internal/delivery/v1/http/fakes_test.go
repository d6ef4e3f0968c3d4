package http

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

type fakeCatalog struct {
	lastFilter domain.ProductFilter
	products   []domain.Product
}

func (f *fakeCatalog) ListProducts(_ context.Context, filter domain.ProductFilter) (*usecase.CatalogRes, error) {
	f.lastFilter = filter
	if !domain.IsKnownSort(filter.Sort) {
		return nil, e.ErrInvalidFilter
	}
	return &usecase.CatalogRes{Products: f.products, Total: len(f.products)}, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, e.ErrNotFound
}

func (f *fakeCatalog) ListCategories(context.Context) ([]domain.Category, error) {
	return []domain.Category{{ID: 1, Name: "Clothes"}}, nil
}

type fakeAuth struct {
	token    string
	loggedIn bool
	lastSess domain.Session
}

func (f *fakeAuth) Login(_ context.Context, sess domain.Session, email, password string) (*usecase.LoginRes, error) {
	f.lastSess = sess
	if password != "secret" {
		return nil, e.ErrUnauthorized
	}
	f.loggedIn = true
	return usecase.NewLoginRes(&domain.Tokens{AccessToken: f.token}, &domain.User{ID: 1, Email: email, Name: "Ann"}), nil
}

func (f *fakeAuth) AdminLogin(_ context.Context, _ domain.Session, email, _ string) (*usecase.LoginRes, error) {
	if email != "admin@mail.com" {
		return nil, e.ErrForbidden
	}
	return usecase.NewLoginRes(&domain.Tokens{AccessToken: f.token}, &domain.User{ID: 2, Email: email, Role: domain.RoleAdmin}), nil
}

func (f *fakeAuth) Register(_ context.Context, req *usecase.RegisterUserReq) (*domain.User, error) {
	return &domain.User{ID: 3, Email: req.Email, Name: req.Name}, nil
}

func (f *fakeAuth) Logout(context.Context, domain.Session) error {
	f.loggedIn = false
	return nil
}

type fakeCart struct {
	cart domain.Cart
}

func (f *fakeCart) view() *usecase.CartView { return usecase.NewCartView(f.cart) }

func (f *fakeCart) Get(context.Context, domain.Session) (*usecase.CartView, error) {
	return f.view(), nil
}

func (f *fakeCart) Add(_ context.Context, _ domain.Session, productID int64, qty int) (*usecase.CartView, error) {
	if qty < 1 {
		return nil, e.ErrInvalidQuantity
	}
	f.cart = f.cart.Add(domain.CartItem{ProductID: productID, Title: "Shirt", Price: decimal.RequireFromString("10.50")}, qty)
	return f.view(), nil
}

func (f *fakeCart) UpdateQuantity(_ context.Context, _ domain.Session, productID int64, qty int) (*usecase.CartView, error) {
	f.cart, _ = f.cart.SetQuantity(productID, qty)
	return f.view(), nil
}

func (f *fakeCart) Remove(_ context.Context, _ domain.Session, productID int64) (*usecase.CartView, error) {
	f.cart = f.cart.Remove(productID)
	return f.view(), nil
}

func (f *fakeCart) Clear(context.Context, domain.Session) error {
	f.cart = nil
	return nil
}

type fakeCheckout struct{}

func (fakeCheckout) Begin(context.Context, domain.Session) (*domain.PendingOrder, error) {
	return nil, e.ErrEmptyCart
}

func (fakeCheckout) Confirm(context.Context, domain.Session) (*domain.Order, error) {
	return &domain.Order{Number: "ORD-1-ABCD"}, nil
}

func (fakeCheckout) Receipt(context.Context, domain.Session) (*domain.Order, error) {
	return nil, e.ErrNotFound
}

func (fakeCheckout) Orders(context.Context, domain.Session) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

type fakeFavorites struct{}

func (fakeFavorites) List(context.Context, domain.Session) (domain.Favorites, error) {
	return nil, nil
}

func (fakeFavorites) Toggle(_ context.Context, _ domain.Session, productID int64) (domain.Favorites, bool, error) {
	return domain.Favorites{{ProductID: productID}}, true, nil
}

func (fakeFavorites) Remove(context.Context, domain.Session, int64) (domain.Favorites, error) {
	return domain.Favorites{}, nil
}

type fakeProfile struct{}

func (fakeProfile) Profile(context.Context, domain.Session) (*domain.User, error) {
	return &domain.User{ID: 1, Name: "Ann"}, nil
}

func (fakeProfile) UpdateProfile(_ context.Context, _ domain.Session, req *usecase.UpdateUserReq) (*domain.User, error) {
	return &domain.User{ID: 1, Name: req.Name}, nil
}

func (fakeProfile) Settings(context.Context, domain.Session) (*domain.UserSettings, error) {
	s := domain.DefaultUserSettings()
	return &s, nil
}

func (fakeProfile) SaveSettings(_ context.Context, _ domain.Session, s domain.UserSettings) (*domain.UserSettings, error) {
	s = s.Normalize()
	return &s, nil
}

type fakeAdmin struct {
	lastProduct *usecase.ProductInput
	lastSess    domain.Session
	uploaded    []usecase.ProductImage
}

func (f *fakeAdmin) CreateProduct(_ context.Context, sess domain.Session, in *usecase.ProductInput) (*domain.Product, error) {
	f.lastProduct, f.lastSess = in, sess
	return &domain.Product{ID: 10, Title: in.Title, Price: in.Price}, nil
}

func (f *fakeAdmin) UpdateProduct(_ context.Context, _ domain.Session, id int64, in *usecase.ProductInput) (*domain.Product, error) {
	f.lastProduct = in
	return &domain.Product{ID: id, Title: in.Title, Price: in.Price}, nil
}

func (f *fakeAdmin) DeleteProduct(context.Context, domain.Session, int64) error { return nil }

func (f *fakeAdmin) CreateCategory(_ context.Context, _ domain.Session, in *usecase.CategoryInput) (*domain.Category, error) {
	return &domain.Category{ID: 5, Name: in.Name, Image: in.Image}, nil
}

func (f *fakeAdmin) UpdateCategory(_ context.Context, _ domain.Session, id int64, in *usecase.CategoryInput) (*domain.Category, error) {
	return &domain.Category{ID: id, Name: in.Name}, nil
}

func (f *fakeAdmin) DeleteCategory(context.Context, domain.Session, int64) error { return e.ErrNotFound }

func (f *fakeAdmin) UploadImages(_ context.Context, _ domain.Session, folder string, images []usecase.ProductImage) (*usecase.UploadImagesRes, error) {
	f.uploaded = images
	keys := make([]string, 0, len(images))
	urls := make([]string, 0, len(images))
	for _, img := range images {
		keys = append(keys, folder+"/"+img.Name)
		urls = append(urls, "http://cdn/"+folder+"/"+img.Name)
	}
	return usecase.NewUploadImagesRes(keys, urls), nil
}

type fakeEvents struct {
	ch chan usecase.StorefrontEvent
}

func (f *fakeEvents) Subscribe(context.Context, domain.Session) (<-chan usecase.StorefrontEvent, func(), error) {
	return f.ch, func() {}, nil
}
