package ports

import "context"

// TxManager delimita una transacción: commit si fn termina sin error, rollback en cualquier otro caso.
// Los repositorios toman la transacción del contexto recibido por fn.
type TxManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// NoopTxManager ejecuta fn sin transacción (tests y repositorios en memoria).
type NoopTxManager struct{}

func (NoopTxManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (NoopTxManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}
