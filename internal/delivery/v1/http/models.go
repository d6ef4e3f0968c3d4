package http

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/shopspring/decimal"
)

// REQUESTS

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ProductRequest — товар из админки. Цена принимается числом или строкой.
type ProductRequest struct {
	Title       string      `json:"title"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	CategoryID  int64       `json:"categoryId"`
	Images      []string    `json:"images"`
}

type CategoryRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// RESPONSES

type CategoryResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Image      string    `json:"image"`
	CreationAt time.Time `json:"creationAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ProductResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Price       decimal.Decimal  `json:"price"`
	Description string           `json:"description"`
	Category    CategoryResponse `json:"category"`
	Images      []string         `json:"images"`
	CreationAt  time.Time        `json:"creationAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type CatalogResponse struct {
	Products   []ProductResponse  `json:"products"`
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

type CartResponse struct {
	Items domain.Cart     `json:"items"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

type LoginResponse struct {
	User *domain.User `json:"user"`
}

type FavoritesResponse struct {
	Favorites domain.Favorites `json:"favorites"`
	Added     *bool            `json:"added,omitempty"`
}

type UploadImagesResponse struct {
	Keys []string `json:"keys"`
	URLs []string `json:"urls"`
}

// MAPPERS

func toCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		Image:      c.Image,
		CreationAt: c.CreationAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toCategoriesResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, toCategoryResponse(c))
	}
	return res
}

func toProductResponse(p domain.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Price:       p.Price,
		Description: p.Description,
		Category:    toCategoryResponse(p.Category),
		Images:      images,
		CreationAt:  p.CreationAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductsResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res
}

func toCatalogResponse(res *usecase.CatalogRes) CatalogResponse {
	return CatalogResponse{
		Products:   toProductsResponse(res.Products),
		Categories: toCategoriesResponse(res.Categories),
		Total:      res.Total,
	}
}

func toCartResponse(view *usecase.CartView) CartResponse {
	items := view.Items
	if items == nil {
		items = domain.Cart{}
	}

	return CartResponse{Items: items, Total: view.Total, Count: view.Count}
}

func toFavoritesResponse(favs domain.Favorites, added *bool) FavoritesResponse {
	if favs == nil {
		favs = domain.Favorites{}
	}

	return FavoritesResponse{Favorites: favs, Added: added}
}

// toProductInput переводит запрос админки в ProductInput. Пустая цена допустима только при частичном изменении.
func toProductInput(req *ProductRequest, full bool) (*usecase.ProductInput, error) {
	in := &usecase.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Images:      req.Images,
	}

	if req.Price == "" && !full {
		return in, nil
	}

	price, err := parsePrice(req.Price.String())
	if err != nil {
		return nil, err
	}
	in.Price = price

	return in, nil
}
