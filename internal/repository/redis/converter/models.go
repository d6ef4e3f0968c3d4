package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryRedisModel struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Image      string    `json:"image"`
	CreationAt time.Time `json:"creation_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProductRedisModel struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Price       decimal.Decimal    `json:"price"`
	Description string             `json:"description"`
	Category    CategoryRedisModel `json:"category"`
	Images      []string           `json:"images"`
	CreationAt  time.Time          `json:"creation_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
