// Package query renders optional filters into parameterized Postgres WHERE
// clauses. Predicates are accumulated as typed values and only turned into SQL
// text at render time, so user input never appears in the query string itself.
package query

import (
	"fmt"
	"strings"
)

type kind int

const (
	kindEq kind = iota
	kindEqAny
	kindContains
)

type predicate struct {
	kind    kind
	columns []string
	value   interface{}
}

// Builder accumulates predicates for a single statement. The zero value is ready to use.
type Builder struct {
	predicates []predicate
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Eq adds an exact-match predicate on one column.
func (b *Builder) Eq(column string, value interface{}) *Builder {
	b.predicates = append(b.predicates, predicate{kind: kindEq, columns: []string{column}, value: value})
	return b
}

// EqAny adds a predicate matching when any of the columns equals the value.
func (b *Builder) EqAny(value interface{}, columns ...string) *Builder {
	b.predicates = append(b.predicates, predicate{kind: kindEqAny, columns: columns, value: value})
	return b
}

// Contains adds a case-insensitive substring predicate across one or more
// columns (OR'd). LIKE metacharacters in the value are escaped.
func (b *Builder) Contains(value string, columns ...string) *Builder {
	b.predicates = append(b.predicates, predicate{kind: kindContains, columns: columns, value: value})
	return b
}

// Empty reports whether no predicates were added.
func (b *Builder) Empty() bool {
	return len(b.predicates) == 0
}

// Where renders the accumulated predicates into a " WHERE ..." fragment and its
// ordered argument list. Each predicate consumes exactly one placeholder, reused
// across its OR'd columns. An empty builder renders to an empty fragment.
func (b *Builder) Where() (string, []interface{}) {
	if len(b.predicates) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(b.predicates))
	args := make([]interface{}, 0, len(b.predicates))

	for _, p := range b.predicates {
		n := len(args) + 1
		switch p.kind {
		case kindEq:
			conditions = append(conditions, fmt.Sprintf("%s = $%d", p.columns[0], n))
			args = append(args, p.value)
		case kindEqAny:
			parts := make([]string, len(p.columns))
			for i, col := range p.columns {
				parts[i] = fmt.Sprintf("%s = $%d", col, n)
			}
			conditions = append(conditions, "("+strings.Join(parts, " OR ")+")")
			args = append(args, p.value)
		case kindContains:
			parts := make([]string, len(p.columns))
			for i, col := range p.columns {
				parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
			}
			cond := strings.Join(parts, " OR ")
			if len(p.columns) > 1 {
				cond = "(" + cond + ")"
			}
			conditions = append(conditions, cond)
			args = append(args, "%"+escapeLike(p.value.(string))+"%")
		}
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike neutralises LIKE metacharacters so a filter value only ever
// matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
