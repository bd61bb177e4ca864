package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Service is an open SQL connection pool together with its dialect.
type Service interface {
	DB() *sql.DB
	Dialect() Dialect
	Ping(ctx context.Context) error
	Close() error
}

// Dialect captures the few places where PostgreSQL and SQLite disagree.
type Dialect struct {
	Name      string
	numbered  bool
	collation string
}

var (
	SQLite   = Dialect{Name: "sqlite", collation: "BINARY"}
	Postgres = Dialect{Name: "postgres", numbered: true, collation: `"C"`}
)

// Rebind rewrites "?" placeholders into the dialect's native form.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// OrderBy returns an ascending, byte-wise (case-sensitive) ORDER BY term.
func (d Dialect) OrderBy(column string) string {
	return fmt.Sprintf("%s COLLATE %s ASC", column, d.collation)
}
