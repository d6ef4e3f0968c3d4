package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// Transactor открывает транзакцию pgx и кладёт её в контекст для репозиториев.
type Transactor struct {
	db transaction.Transactional
}

func NewTransactor(db transaction.Transactional) *Transactor {
	return &Transactor{db: db}
}

// WithinTx выполняет fn в транзакции: ошибка fn или паника откатывают её, иначе коммит.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.db)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	// Если произошла ошибка, происходит Rollback транзакции
	defer func() {
		if p := recover(); p != nil {
			if tx.IsActive() {
				_ = tx.Rollback(ctx)
			}
			panic(p)
		}
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tr.WithTx(ctx, tx.Transaction())); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
