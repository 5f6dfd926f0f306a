package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/translatable-api/internal/domain/repository"
	"github.com/jhoicas/translatable-api/pkg/translatable"
)

var _ translatable.TxRunner[repository.CategoryStore] = (*TxRunner[repository.CategoryStore])(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// bind construye los repositorios atados a la transacción.
type TxRunner[R any] struct {
	pool *pgxpool.Pool
	bind func(q Querier) R
}

// NewTxRunner construye el runner con el pool y la función que ata los repositorios.
func NewTxRunner[R any](pool *pgxpool.Pool, bind func(q Querier) R) *TxRunner[R] {
	return &TxRunner[R]{pool: pool, bind: bind}
}

// NewCategoryTxRunner runner con los repositorios de categorías.
func NewCategoryTxRunner(pool *pgxpool.Pool) *TxRunner[repository.CategoryStore] {
	return NewTxRunner(pool, NewCategoryStore)
}

// NewCategoryStore agrupa los repositorios de categorías sobre q (pool o tx).
func NewCategoryStore(q Querier) repository.CategoryStore {
	return repository.CategoryStore{
		Categories:   NewCategoryRepository(q),
		Translations: NewCategoryTranslationRepository(q),
	}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner[R]) Run(ctx context.Context, fn func(repos R) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(r.bind(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
