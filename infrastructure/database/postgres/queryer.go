package postgres

import "database/sql"

// Queryer é o subconjunto de operações usado pelos repositórios
type Queryer interface {
	Exec(sql string, args ...interface{}) (sql.Result, error)
	Query(sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(sql string, args ...interface{}) *sql.Row
}
