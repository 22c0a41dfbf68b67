package postgres

import (
	"context"
	"database/sql"
)

// Queryer abstrae la conexión para que los repositorios funcionen igual
// sobre la conexión directa o sobre una transacción.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
