package converter

import "github.com/DRSN-tech/storefront/internal/domain"

// CatalogConverter переводит товары и категории между domain и моделями кэша.
type CatalogConverter struct{}

func (CatalogConverter) ToRedisCategory(c domain.Category) CategoryRedisModel {
	return CategoryRedisModel{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		Image:      c.Image,
		CreationAt: c.CreationAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (CatalogConverter) ToDomainCategory(m CategoryRedisModel) domain.Category {
	return domain.Category{
		ID:         m.ID,
		Name:       m.Name,
		Slug:       m.Slug,
		Image:      m.Image,
		CreationAt: m.CreationAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (c CatalogConverter) ToRedisProduct(p domain.Product) ProductRedisModel {
	return ProductRedisModel{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Price:       p.Price,
		Description: p.Description,
		Category:    c.ToRedisCategory(p.Category),
		Images:      p.Images,
		CreationAt:  p.CreationAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (c CatalogConverter) ToDomainProduct(m ProductRedisModel) domain.Product {
	return domain.Product{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Price:       m.Price,
		Description: m.Description,
		Category:    c.ToDomainCategory(m.Category),
		Images:      m.Images,
		CreationAt:  m.CreationAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (c CatalogConverter) ToArrRedisProduct(products []domain.Product) []ProductRedisModel {
	res := make([]ProductRedisModel, 0, len(products))
	for _, p := range products {
		res = append(res, c.ToRedisProduct(p))
	}
	return res
}

func (c CatalogConverter) ToArrDomainProduct(models []ProductRedisModel) []domain.Product {
	res := make([]domain.Product, 0, len(models))
	for _, m := range models {
		res = append(res, c.ToDomainProduct(m))
	}
	return res
}

func (c CatalogConverter) ToArrRedisCategory(categories []domain.Category) []CategoryRedisModel {
	res := make([]CategoryRedisModel, 0, len(categories))
	for _, cat := range categories {
		res = append(res, c.ToRedisCategory(cat))
	}
	return res
}

func (c CatalogConverter) ToArrDomainCategory(models []CategoryRedisModel) []domain.Category {
	res := make([]domain.Category, 0, len(models))
	for _, m := range models {
		res = append(res, c.ToDomainCategory(m))
	}
	return res
}
