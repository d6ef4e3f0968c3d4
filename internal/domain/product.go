package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар внешнего API
type Product struct {
	ID          int64
	Title       string
	Slug        string
	Price       decimal.Decimal
	Description string
	Category    Category
	Images      []string
	CreationAt  time.Time
	UpdatedAt   time.Time
}

// MainImage возвращает первое изображение товара или пустую строку.
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
