package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID        int64           `db:"id"`
	Number    string          `db:"number"`
	Email     string          `db:"email"`
	Items     []byte          `db:"items"` // jsonb, снимок позиций корзины
	Total     decimal.Decimal `db:"total"`
	CreatedAt time.Time       `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID string     `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
