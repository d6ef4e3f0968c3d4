package domain

import "github.com/shopspring/decimal"

// Favorite — избранный товар (подмножество полей Product).
type Favorite struct {
	ProductID int64           `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
}

func NewFavorite(p *Product) Favorite {
	return Favorite{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.MainImage(),
		Category:  p.Category.Name,
	}
}

type Favorites []Favorite

// Toggle добавляет товар, если его нет, иначе удаляет. added показывает итоговое состояние.
func (f Favorites) Toggle(fav Favorite) (res Favorites, added bool) {
	if f.Contains(fav.ProductID) {
		return f.Remove(fav.ProductID), false
	}

	res = make(Favorites, len(f), len(f)+1)
	copy(res, f)
	return append(res, fav), true
}

func (f Favorites) Remove(productID int64) Favorites {
	res := make(Favorites, 0, len(f))
	for _, fav := range f {
		if fav.ProductID != productID {
			res = append(res, fav)
		}
	}
	return res
}

func (f Favorites) Contains(productID int64) bool {
	for _, fav := range f {
		if fav.ProductID == productID {
			return true
		}
	}
	return false
}
