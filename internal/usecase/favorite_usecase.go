package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// FavoriteUseCase хранит избранное аккаунта под favorites_<email>.
type FavoriteUseCase struct {
	storage  StorageRepository
	products ProductProvider
	logger   logger.Logger
}

func NewFavoriteUC(storage StorageRepository, products ProductProvider, logger logger.Logger) *FavoriteUseCase {
	return &FavoriteUseCase{storage: storage, products: products, logger: logger}
}

func (f *FavoriteUseCase) List(ctx context.Context, sess domain.Session) (domain.Favorites, error) {
	const op = "FavoriteUseCase.List"

	favs, _, err := f.load(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return favs, nil
}

// Toggle добавляет товар в избранное или убирает его, если он уже там.
func (f *FavoriteUseCase) Toggle(ctx context.Context, sess domain.Session, productID int64) (domain.Favorites, bool, error) {
	const op = "FavoriteUseCase.Toggle"

	favs, email, err := f.load(ctx, sess)
	if err != nil {
		return nil, false, e.Wrap(op, err)
	}

	if favs.Contains(productID) {
		favs = favs.Remove(productID)
		if err := f.storage.Set(ctx, sess.ID, domain.FavoritesKey(email), favs); err != nil {
			return nil, false, e.Wrap(op, err)
		}
		return favs, false, nil
	}

	product, err := f.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, false, e.Wrap(op, err)
	}

	favs, added := favs.Toggle(domain.NewFavorite(product))
	if err := f.storage.Set(ctx, sess.ID, domain.FavoritesKey(email), favs); err != nil {
		return nil, false, e.Wrap(op, err)
	}

	return favs, added, nil
}

func (f *FavoriteUseCase) Remove(ctx context.Context, sess domain.Session, productID int64) (domain.Favorites, error) {
	const op = "FavoriteUseCase.Remove"

	favs, email, err := f.load(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	favs = favs.Remove(productID)
	if err := f.storage.Set(ctx, sess.ID, domain.FavoritesKey(email), favs); err != nil {
		return nil, e.Wrap(op, err)
	}

	return favs, nil
}

func (f *FavoriteUseCase) load(ctx context.Context, sess domain.Session) (domain.Favorites, string, error) {
	email, err := requireEmail(ctx, f.storage, sess)
	if err != nil {
		return nil, "", err
	}

	favs := domain.Favorites{}
	if _, err := f.storage.Get(ctx, sess.ID, domain.FavoritesKey(email), &favs); err != nil {
		return nil, "", err
	}
	if favs == nil {
		favs = domain.Favorites{}
	}

	return favs, email, nil
}
