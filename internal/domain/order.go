package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order: оформленный заказ, он же квитанция (lastReceipt).
type Order struct {
	Number    string          `json:"orderNumber"`
	Email     string          `json:"email"`
	Items     Cart            `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"date"`
}

// NewOrder фиксирует снимок корзины и считает итог.
func NewOrder(email string, items Cart, now time.Time) *Order {
	snapshot := make(Cart, len(items))
	copy(snapshot, items)

	return &Order{
		Number:    NewOrderNumber(now),
		Email:     NormalizeEmail(email),
		Items:     snapshot,
		Total:     snapshot.Total(),
		CreatedAt: now.UTC(),
	}
}

// NewOrderNumber генерирует номер вида ORD-<unix ms>-<4 hex>.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// PendingOrder — снимок корзины на шаге оформления (pendingOrder).
type PendingOrder struct {
	Items     Cart            `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewPendingOrder(items Cart, now time.Time) *PendingOrder {
	snapshot := make(Cart, len(items))
	copy(snapshot, items)

	return &PendingOrder{
		Items:     snapshot,
		Total:     snapshot.Total(),
		CreatedAt: now.UTC(),
	}
}
