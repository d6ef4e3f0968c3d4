package domain

import "time"

// Category описывает категорию товара
type Category struct {
	ID         int64
	Name       string
	Slug       string
	Image      string
	CreationAt time.Time
	UpdatedAt  time.Time
}
