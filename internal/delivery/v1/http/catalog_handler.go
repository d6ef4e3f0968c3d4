package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Товары с фильтром по категории и цене, поиском и сортировкой
//	@Tags			products
//	@Produce		json
//	@Param			search		query		string	false	"Поиск по названию, описанию и категории"
//	@Param			categoryId	query		int		false	"Категория"
//	@Param			priceMin	query		number	false	"Минимальная цена"
//	@Param			priceMax	query		number	false	"Максимальная цена"
//	@Param			sort		query		string	false	"price-asc | price-desc | title-asc | title-desc | newest | oldest"
//	@Param			offset		query		int		false	"Смещение"
//	@Param			limit		query		int		false	"Размер страницы"
//	@Success		200			{object}	CatalogResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		502			{object}	ErrorResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	res, err := h.catalogUsecase.ListProducts(r.Context(), filter)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCatalogResponse(res))
}

// getProduct
//
//	@Summary	Товар по id
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	product, err := h.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(*product))
}

// listCategories
//
//	@Summary	Категории
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}		CategoryResponse
//	@Failure	502	{object}	ErrorResponse
//	@Router		/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		writeErr(h.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoriesResponse(categories))
}

func parseProductFilter(r *http.Request) (domain.ProductFilter, error) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Sort:   q.Get("sort"),
	}

	var err error
	if filter.CategoryID, err = parseIntParam(q.Get("categoryId")); err != nil {
		return filter, err
	}
	if filter.PriceMin, err = parseOptionalPrice(q.Get("priceMin")); err != nil {
		return filter, err
	}
	if filter.PriceMax, err = parseOptionalPrice(q.Get("priceMax")); err != nil {
		return filter, err
	}

	offset, err := parseIntParam(q.Get("offset"))
	if err != nil {
		return filter, err
	}
	limit, err := parseIntParam(q.Get("limit"))
	if err != nil {
		return filter, err
	}
	filter.Offset, filter.Limit = int(offset), int(limit)

	return filter, nil
}

func parseIntParam(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, e.Wrap(s, e.ErrInvalidFilter)
	}
	return v, nil
}
