package domain

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Поля сортировки каталога.
const (
	SortDefault   = ""
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortTitleAsc  = "title-asc"
	SortTitleDesc = "title-desc"
	SortNewest    = "newest"
	SortOldest    = "oldest"
)

// ProductFilter — параметры фильтрации, сортировки, поиска и окна выдачи каталога.
type ProductFilter struct {
	Search     string
	CategoryID int64
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Sort       string
	Offset     int
	Limit      int // 0 без ограничения
}

// FilterResult — отфильтрованная страница и общее число совпадений до применения окна.
type FilterResult struct {
	Products []Product
	Total    int
}

func IsKnownSort(s string) bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortTitleAsc, SortTitleDesc, SortNewest, SortOldest:
		return true
	default:
		return false
	}
}

// ApplyFilter проходит по списку один раз, затем сортирует стабильно
// компаратором, выбранным по полю сортировки, и режет окно offset/limit.
func ApplyFilter(products []Product, f ProductFilter) FilterResult {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if f.CategoryID != 0 && p.Category.ID != f.CategoryID {
			continue
		}
		if f.PriceMin != nil && p.Price.LessThan(*f.PriceMin) {
			continue
		}
		if f.PriceMax != nil && p.Price.GreaterThan(*f.PriceMax) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		matched = append(matched, p)
	}

	if less := comparator(f.Sort); less != nil {
		slices.SortStableFunc(matched, less)
	}

	total := len(matched)
	return FilterResult{Products: window(matched, f.Offset, f.Limit), Total: total}
}

func matchesSearch(p Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Category.Name), search)
}

func comparator(sort string) func(a, b Product) int {
	switch sort {
	case SortPriceAsc:
		return func(a, b Product) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		return func(a, b Product) int { return b.Price.Cmp(a.Price) }
	case SortTitleAsc:
		return func(a, b Product) int { return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)) }
	case SortTitleDesc:
		return func(a, b Product) int { return cmp.Compare(strings.ToLower(b.Title), strings.ToLower(a.Title)) }
	case SortNewest:
		return func(a, b Product) int { return b.CreationAt.Compare(a.CreationAt) }
	case SortOldest:
		return func(a, b Product) int { return a.CreationAt.Compare(b.CreationAt) }
	default:
		return nil
	}
}

func window(products []Product, offset, limit int) []Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(products) {
		return []Product{}
	}

	end := len(products)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return products[offset:end]
}
