package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txKey struct{}

// Querier é o subconjunto de operações comum a *pgxpool.Pool e pgx.Tx.
// Os repositórios executam suas consultas através dele, de modo que a mesma
// implementação funciona dentro e fora de uma transação.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxManager executa funções dentro de uma transação
type TxManager interface {
	// WithinTransaction executa fn dentro de uma transação. A transação fica
	// disponível no contexto para os repositórios via QuerierFrom; rollback
	// em caso de erro, commit caso contrário.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PgxTxManager implementa TxManager sobre um pool pgx
type PgxTxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager cria uma nova instância de TxManager
func NewTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

// WithinTransaction implementa TxManager.WithinTransaction
func (m *PgxTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// Transação já aberta no contexto: reaproveitar
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && rbErr != pgx.ErrTxClosed {
			return fmt.Errorf("%w (rollback falhou: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// QuerierFrom retorna a transação do contexto, quando houver, ou o pool
func QuerierFrom(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}
