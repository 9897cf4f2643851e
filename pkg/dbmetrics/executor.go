package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс выполнения запросов.
// Ему удовлетворяют *sql.DB, *sql.Tx и обёртки этого пакета.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor исполнитель запросов внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type executorCtxKey struct{}

// WithExecutor кладёт исполнитель (обычно транзакцию) в контекст.
// Репозитории достают его через GetExecutor, поэтому один и тот же код
// работает и внутри транзакции, и без неё.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, exec)
}

// GetExecutor возвращает исполнитель из контекста или fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorCtxKey{}).(DBExecutor); ok && exec != nil {
		return exec
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	exec, ok := ctx.Value(executorCtxKey{}).(DBExecutor)
	if !ok || exec == nil {
		return false
	}
	_, isTx := exec.(TxExecutor)
	return isTx
}
