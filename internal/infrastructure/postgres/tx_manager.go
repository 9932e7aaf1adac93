package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/wazard-api/internal/application/ports"
)

var _ ports.TxManager = (*TxManager)(nil)

// TxBeginner lo implementan *pgxpool.Pool y pgxmock.PgxPoolIface.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TxManager abre una transacción por caso de uso y la guarda en el contexto.
// Si el contexto ya trae una transacción, fn se ejecuta dentro de ella (no hay anidamiento real).
type TxManager struct {
	pool TxBeginner
}

// NewTxManager construye el manager con el pool.
func NewTxManager(pool TxBeginner) *TxManager {
	return &TxManager{pool: pool}
}

// WithinReadOnly ejecuta fn en una transacción READ ONLY.
func (m *TxManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return m.within(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

// WithinReadWrite ejecuta fn en una transacción READ WRITE.
func (m *TxManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return m.within(ctx, pgx.TxOptions{AccessMode: pgx.ReadWrite}, fn)
}

func (m *TxManager) within(ctx context.Context, opts pgx.TxOptions, fn func(context.Context) error) error {
	if fn == nil {
		return errors.New("postgres: función de transacción requerida")
	}
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(contextWithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
