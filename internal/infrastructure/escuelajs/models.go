package escuelajs

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/shopspring/decimal"
)

// Модели ответов и запросов внешнего API

type categoryDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Image      string    `json:"image"`
	CreationAt time.Time `json:"creationAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type productDTO struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    categoryDTO     `json:"category"`
	Images      []string        `json:"images"`
	CreationAt  time.Time       `json:"creationAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type userDTO struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

type updateUserReq struct {
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// productReq: тело создания/изменения товара. Цена уходит числом, а не строкой.
type productReq struct {
	Title       string      `json:"title,omitempty"`
	Price       json.Number `json:"price,omitempty"`
	Description string      `json:"description,omitempty"`
	CategoryID  int64       `json:"categoryId,omitempty"`
	Images      []string    `json:"images,omitempty"`
}

type categoryReq struct {
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

// CONVERTERS

func toDomainCategory(c categoryDTO) domain.Category {
	return domain.Category{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		Image:      c.Image,
		CreationAt: c.CreationAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toDomainProduct(p productDTO) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Price:       p.Price,
		Description: p.Description,
		Category:    toDomainCategory(p.Category),
		Images:      p.Images,
		CreationAt:  p.CreationAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toDomainUser(u userDTO) *domain.User {
	return &domain.User{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}

func fromProductInput(in *usecase.ProductInput) productReq {
	req := productReq{
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Images:      in.Images,
	}
	if !in.Price.IsZero() {
		req.Price = json.Number(in.Price.String())
	}

	return req
}
