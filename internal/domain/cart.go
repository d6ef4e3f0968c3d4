package domain

import "github.com/shopspring/decimal"

// MaxItemQuantity ограничивает количество единиц одного товара в корзине.
const MaxItemQuantity = 999

// CartItem — позиция корзины: снимок полей товара и количество.
type CartItem struct {
	ProductID int64           `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
}

func NewCartItem(p *Product) CartItem {
	return CartItem{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.MainImage(),
		Category:  p.Category.Name,
	}
}

// Subtotal считает стоимость позиции с учётом количества.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart — корзина в том виде, в каком она лежит в хранилище (JSON-массив).
// Методы не изменяют исходный срез.
type Cart []CartItem

// Add добавляет qty единиц товара; если товар уже в корзине, количество суммируется.
// Итог не превышает MaxItemQuantity.
func (c Cart) Add(item CartItem, qty int) Cart {
	res := c.clone()
	for i := range res {
		if res[i].ProductID == item.ProductID {
			res[i].Quantity = addQuantity(res[i].Quantity, qty)
			return res
		}
	}

	item.Quantity = addQuantity(0, qty)
	return append(res, item)
}

// CanAdd сообщает, поместятся ли ещё qty единиц товара в позицию.
func (c Cart) CanAdd(productID int64, qty int) bool {
	return qty >= 1 && qty <= MaxItemQuantity-c.Quantity(productID)
}

// Quantity возвращает количество товара в корзине (0, если его нет).
func (c Cart) Quantity(productID int64) int {
	for _, item := range c {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// SetQuantity выставляет количество; qty <= 0 удаляет позицию.
// Второе значение: найден ли товар.
func (c Cart) SetQuantity(productID int64, qty int) (Cart, bool) {
	if qty <= 0 {
		if !c.Contains(productID) {
			return c.clone(), false
		}
		return c.Remove(productID), true
	}

	res := c.clone()
	for i := range res {
		if res[i].ProductID == productID {
			res[i].Quantity = qty
			return res, true
		}
	}

	return res, false
}

func (c Cart) Remove(productID int64) Cart {
	res := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ProductID != productID {
			res = append(res, item)
		}
	}

	return res
}

// Merge вливает other в корзину: одинаковые товары складываются по количеству,
// поля товара берутся из более свежей записи (other).
func (c Cart) Merge(other Cart) Cart {
	res := c.clone()
	for _, item := range other {
		found := false
		for i := range res {
			if res[i].ProductID == item.ProductID {
				qty := addQuantity(res[i].Quantity, item.Quantity)
				res[i] = item
				res[i].Quantity = qty
				found = true
				break
			}
		}
		if !found {
			res = append(res, item)
		}
	}

	return res
}

func (c Cart) Contains(productID int64) bool {
	for _, item := range c {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Normalize выбрасывает позиции с неположительным количеством или без id
// и урезает количество до MaxItemQuantity.
func (c Cart) Normalize() Cart {
	res := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			continue
		}
		item.Quantity = min(item.Quantity, MaxItemQuantity)
		res = append(res, item)
	}
	return res
}

// Total — сумма корзины, округлённая до копеек.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Subtotal())
	}

	return total.Round(2)
}

// Count возвращает общее количество единиц товара.
func (c Cart) Count() int {
	n := 0
	for _, item := range c {
		n += item.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

func (c Cart) clone() Cart {
	res := make(Cart, len(c), len(c)+1)
	copy(res, c)
	return res
}

// addQuantity складывает количества без переполнения, с потолком MaxItemQuantity.
func addQuantity(current, qty int) int {
	if qty <= 0 {
		return current
	}
	if qty >= MaxItemQuantity-current {
		return MaxItemQuantity
	}
	return current + qty
}
