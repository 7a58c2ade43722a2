package postgres

import (
	"database/sql"
)

// Queryer é a superfície de consulta usada pelos repositórios do driver
// relacional. *sql.DB e *sql.Tx a implementam.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
