package domain

import "strings"

// Ключи хранилища повторяют ключи localStorage витрины.
const (
	KeyToken            = "token"
	KeyAdminToken       = "adminToken"
	KeyUserName         = "userName"
	KeyUserEmail        = "userEmail"
	KeyCart             = "cart"
	KeyLastReceipt      = "lastReceipt"
	KeyPendingOrder     = "pendingOrder"
	KeyPendingClearCart = "pendingClearCart"

	prefixCart     = "cart_"
	prefixOrders   = "orders_"
	prefixFavorite = "favorites_"
	prefixSettings = "userSettings_"
)

// StorageKey — ключ хранилища. Ключи с email относятся к аккаунту,
// остальные живут в рамках одного браузера (sid).
type StorageKey struct {
	Name          string
	AccountScoped bool
}

func (k StorageKey) String() string {
	return k.Name
}

func SessionKey(name string) StorageKey {
	return StorageKey{Name: name}
}

func UserCartKey(email string) StorageKey {
	return accountKey(prefixCart, email)
}

func OrdersKey(email string) StorageKey {
	return accountKey(prefixOrders, email)
}

func FavoritesKey(email string) StorageKey {
	return accountKey(prefixFavorite, email)
}

func UserSettingsKey(email string) StorageKey {
	return accountKey(prefixSettings, email)
}

func accountKey(prefix, email string) StorageKey {
	return StorageKey{Name: prefix + NormalizeEmail(email), AccountScoped: true}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
