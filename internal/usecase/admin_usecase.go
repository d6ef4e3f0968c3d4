package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/bearer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const (
	maxProductImages = 10
	defaultFolder    = "products"
)

// CatalogInvalidator сбрасывает кэш каталога после изменений.
type CatalogInvalidator interface {
	InvalidateProducts(ctx context.Context, ids ...int64)
	InvalidateCatalog(ctx context.Context)
}

// AdminUseCase — операции админки. Все вызовы внешнего API идут с токеном adminToken.
type AdminUseCase struct {
	api         StoreAPI
	imagesInfra ImagesInfra
	catalog     CatalogInvalidator
	images      domain.ImagePolicy
	logger      logger.Logger
}

func NewAdminUC(
	api StoreAPI,
	imagesInfra ImagesInfra,
	catalog CatalogInvalidator,
	images domain.ImagePolicy,
	logger logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		api:         api,
		imagesInfra: imagesInfra,
		catalog:     catalog,
		images:      images,
		logger:      logger,
	}
}

func (a *AdminUseCase) CreateProduct(ctx context.Context, sess domain.Session, in *ProductInput) (*domain.Product, error) {
	const op = "AdminUseCase.CreateProduct"

	ctx, err := a.adminCtx(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := a.validateProduct(in, true); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := a.api.CreateProduct(ctx, in)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.catalog.InvalidateProducts(ctx)
	a.logger.Infof("product %d created", product.ID)

	return product, nil
}

// UpdateProduct меняет только заполненные поля.
func (a *AdminUseCase) UpdateProduct(ctx context.Context, sess domain.Session, id int64, in *ProductInput) (*domain.Product, error) {
	const op = "AdminUseCase.UpdateProduct"

	ctx, err := a.adminCtx(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if id <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidID)
	}
	if err := a.validateProduct(in, false); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := a.api.UpdateProduct(ctx, id, in)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.catalog.InvalidateProducts(ctx, id)
	return product, nil
}

func (a *AdminUseCase) DeleteProduct(ctx context.Context, sess domain.Session, id int64) error {
	const op = "AdminUseCase.DeleteProduct"

	ctx, err := a.adminCtx(ctx, sess)
	if err != nil {
		return e.Wrap(op, err)
	}

	if id <= 0 {
		return e.Wrap(op, e.ErrInvalidID)
	}

	if err := a.api.DeleteProduct(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	a.catalog.InvalidateProducts(ctx, id)
	a.logger.Infof("product %d deleted", id)

	return nil
}

func (a *AdminUseCase) CreateCategory(ctx context.Context, sess domain.Session, in *CategoryInput) (*domain.Category, error) {
	const op = "AdminUseCase.CreateCategory"

	ctx, err := a.adminCtx(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := a.validateCategory(in, true); err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := a.api.CreateCategory(ctx, in)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.catalog.InvalidateCatalog(ctx)
	return category, nil
}

func (a *AdminUseCase) UpdateCategory(ctx context.Context, sess domain.Session, id int64, in *CategoryInput) (*domain.Category, error) {
	const op = "AdminUseCase.UpdateCategory"

	ctx, err := a.adminCtx(ctx, sess)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if id <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidID)
	}
	if err := a.validateCategory(in, false); err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := a.api.UpdateCategory(ctx, id, in)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Категория встроена в каждый товар, поэтому сбрасывается весь каталог
	a.catalog.InvalidateCatalog(ctx)
	return category, nil
}

func (a *AdminUseCase) DeleteCategory(ctx context.Context, sess domain.Session, id int64) error {
	const op = "AdminUseCase.DeleteCategory"

	ctx, err := a.adminCtx(ctx, sess)
	if err != nil {
		return e.Wrap(op, err)
	}

	if id <= 0 {
		return e.Wrap(op, e.ErrInvalidID)
	}

	if err := a.api.DeleteCategory(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	a.catalog.InvalidateCatalog(ctx)
	return nil
}

// UploadImages сохраняет изображения в MinIO и возвращает их публичные ссылки.
func (a *AdminUseCase) UploadImages(ctx context.Context, sess domain.Session, folder string, images []ProductImage) (*UploadImagesRes, error) {
	const op = "AdminUseCase.UploadImages"

	if !sess.AdminAuthenticated() {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	if len(images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}
	if len(images) > maxProductImages {
		return nil, e.Wrap(op, e.ErrTooManyImages)
	}

	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = defaultFolder
	}

	res, err := a.imagesInfra.UploadImages(ctx, NewUploadImagesReq(folder, images))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.logger.Infof("%d images uploaded to %s", len(res.URLs), folder)
	return res, nil
}

// adminCtx проверяет вход в админку и кладёт adminToken в контекст запроса к API.
func (a *AdminUseCase) adminCtx(ctx context.Context, sess domain.Session) (context.Context, error) {
	if !sess.AdminAuthenticated() {
		return ctx, e.ErrUnauthorized
	}

	return bearer.WithToken(ctx, sess.AdminToken), nil
}

// validateProduct проверяет данные товара. При изменении (full=false) пустые поля допустимы.
func (a *AdminUseCase) validateProduct(in *ProductInput, full bool) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	if full && (in.Title == "" || in.Description == "" || in.CategoryID <= 0) {
		return e.ErrMissingFields
	}
	if full || !in.Price.IsZero() {
		if !in.Price.IsPositive() {
			return e.ErrInvalidPrice
		}
		if !in.Price.Equal(in.Price.Round(2)) {
			return e.ErrPricePrecision
		}
	}
	if in.CategoryID < 0 {
		return e.ErrInvalidID
	}

	if full && len(in.Images) == 0 {
		return e.ErrNoImages
	}
	if len(in.Images) > maxProductImages {
		return e.ErrTooManyImages
	}
	for _, img := range in.Images {
		if !a.images.Allowed(img) {
			return e.ErrStatusBadRequest
		}
	}

	return nil
}

func (a *AdminUseCase) validateCategory(in *CategoryInput, full bool) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Image = strings.TrimSpace(in.Image)

	if full && (in.Name == "" || in.Image == "") {
		return e.ErrMissingFields
	}
	if in.Image != "" && !a.images.Allowed(in.Image) {
		return e.ErrStatusBadRequest
	}

	return nil
}
