// Package sqlq is a fluent query builder over an embedded SQLite database.
//
// A chain starts by binding a table and ends with a terminal call that
// compiles the accumulated statement into parameterized SQL:
//
//	db, _ := sqlq.Open("app.db")
//	rows, err := db.Table("users").
//		Select("id", "name").
//		Where("active", 1).
//		OrderBy("name").
//		All()
//
// Compiling consumes the chain; the next statement starts with a new
// Table call.
package sqlq

import (
	"database/sql"
	"log"
)

// Executor runs compiled statements. *sql.DB satisfies it, as does
// anything wrapping one.
type Executor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
}

// Debug enables the [SQL] statement/argument log lines.
var Debug bool

func debugf(format string, v ...any) {
	if Debug {
		log.Printf(format, v...)
	}
}
