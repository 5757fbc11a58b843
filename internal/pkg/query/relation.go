package query

import (
	"fmt"
	"strings"
)

const childAlias = "c"

type join struct {
	alias string
	table string
	key   string
	cols  []string
}

// Relation is a child table embedded into a parent row as
// ARRAY(SELECT AS STRUCT ...) correlated on a shared key column.
// A relation with no matching rows decodes to an empty or nil slice.
type Relation struct {
	alias   string
	table   string
	key     string
	cols    []string
	joins   []join
	orderBy []orderTerm
}

// Nested starts a relation named alias over table, correlated on key,
// a column present in both the child and the parent table.
func Nested(alias, table, key string) *Relation {
	return &Relation{alias: alias, table: table, key: key}
}

// Select adds child columns. Plain names are qualified with the child alias.
func (r *Relation) Select(columns ...string) *Relation {
	nr := r.clone()
	nr.cols = append(nr.cols, columns...)
	return nr
}

// LeftJoin pulls columns from a lookup table joined on key.
// Columns may carry an alias, e.g. "name AS breed_name".
func (r *Relation) LeftJoin(table, key string, columns ...string) *Relation {
	nr := r.clone()
	nr.joins = append(nr.joins, join{
		alias: fmt.Sprintf("j%d", len(nr.joins)),
		table: table,
		key:   key,
		cols:  append([]string(nil), columns...),
	})
	return nr
}

// OrderBy orders the embedded rows by a child column.
func (r *Relation) OrderBy(column string, direction Direction) *Relation {
	nr := r.clone()
	nr.orderBy = append(nr.orderBy, orderTerm{column: childAlias + "." + column, direction: direction})
	return nr
}

func (r *Relation) sql(parent string) string {
	cols := make([]string, 0, len(r.cols))
	for _, c := range r.cols {
		cols = append(cols, childAlias+"."+c)
	}
	for _, j := range r.joins {
		for _, c := range j.cols {
			cols = append(cols, j.alias+"."+c)
		}
	}
	if len(cols) == 0 {
		cols = append(cols, childAlias+".*")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "ARRAY(SELECT AS STRUCT %s FROM %s AS %s", strings.Join(cols, ", "), r.table, childAlias)
	for _, j := range r.joins {
		fmt.Fprintf(&sb, " LEFT JOIN %s AS %s ON %s.%s = %s.%s", j.table, j.alias, j.alias, j.key, childAlias, j.key)
	}
	fmt.Fprintf(&sb, " WHERE %s.%s = %s.%s", childAlias, r.key, parent, r.key)
	if len(r.orderBy) > 0 {
		terms := make([]string, 0, len(r.orderBy))
		for _, o := range r.orderBy {
			terms = append(terms, o.String())
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(terms, ", "))
	}
	fmt.Fprintf(&sb, ") AS %s", r.alias)
	return sb.String()
}

func (r *Relation) clone() *Relation {
	return &Relation{
		alias:   r.alias,
		table:   r.table,
		key:     r.key,
		cols:    append([]string(nil), r.cols...),
		joins:   append([]join(nil), r.joins...),
		orderBy: append([]orderTerm(nil), r.orderBy...),
	}
}
