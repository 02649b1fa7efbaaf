package postgres

import "database/sql"

// Queryer é o subconjunto de *sql.DB usado pelos repositórios. As consultas
// são somente leitura e toleram execução concorrente entre requisições.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
