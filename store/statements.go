package store

import (
	"context"
	"strings"
)

// Column pairs a column name with the value bound for it.
type Column struct {
	Name  string
	Value any
}

// Set builds a Column. A nil pointer value is bound as NULL.
func Set(name string, value any) Column {
	return Column{Name: name, Value: value}
}

// Cond is an equality filter used by Find.
type Cond struct {
	Column string
	Value  any
}

// Opt returns the pointed-to value or nil, so that an omitted field binds
// as NULL and COALESCE keeps the stored value.
func Opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func InsertSQL(table string, cols []Column) string {
	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		marks[i] = "?"
	}
	return "INSERT INTO " + table + " (" + strings.Join(names, ", ") +
		") VALUES (" + strings.Join(marks, ", ") + ") RETURNING id"
}

// CoalesceUpdateSQL builds an update where a NULL parameter leaves the
// column untouched.
func CoalesceUpdateSQL(table string, cols []Column) string {
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c.Name + " = COALESCE(?, " + c.Name + ")"
	}
	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"
}

func SelectSQL(table string, conds []Cond, orderBy string) string {
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(table)
	for i, c := range conds {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(c.Column)
		b.WriteString(" = ?")
	}
	if orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	return b.String()
}

func values(cols []Column) []any {
	args := make([]any, len(cols))
	for i, c := range cols {
		args[i] = c.Value
	}
	return args
}

// Insert writes one row and returns the id the database assigned.
func Insert(ctx context.Context, ex Executor, table string, cols []Column) (uint, error) {
	var id uint
	if err := ex.Query(ctx, &id, InsertSQL(table, cols), values(cols)...); err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, &Error{Op: "insert " + table, Err: errNoID}
	}
	return id, nil
}

// Update applies a coalescing update to the row with the given id.
func Update(ctx context.Context, ex Executor, table string, id uint, cols []Column) error {
	if len(cols) == 0 {
		return &Error{Op: "update " + table, Err: errNoColumns}
	}
	args := append(values(cols), id)
	n, err := ex.Exec(ctx, CoalesceUpdateSQL(table, cols), args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns the row with the given id, or ErrNotFound.
func Get[T any](ctx context.Context, ex Executor, table string, id uint) (T, error) {
	return First[T](ctx, ex, table, []Cond{{Column: "id", Value: id}})
}

// First returns the first row matching every condition, or ErrNotFound.
func First[T any](ctx context.Context, ex Executor, table string, conds []Cond) (T, error) {
	var zero T
	rows, err := Find[T](ctx, ex, table, conds, "id")
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNotFound
	}
	return rows[0], nil
}

// Find returns every row matching the conditions. The result is never nil.
func Find[T any](ctx context.Context, ex Executor, table string, conds []Cond, orderBy string) ([]T, error) {
	args := make([]any, len(conds))
	for i, c := range conds {
		args[i] = c.Value
	}
	rows := []T{}
	if err := ex.Query(ctx, &rows, SelectSQL(table, conds, orderBy), args...); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// Delete removes the row with the given id and returns it as it was.
func Delete[T any](ctx context.Context, ex Executor, table string, id uint) (T, error) {
	row, err := Get[T](ctx, ex, table, id)
	if err != nil {
		return row, err
	}
	n, err := ex.Exec(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return row, err
	}
	if n == 0 {
		// removed by a concurrent request between the read and the delete
		return row, ErrNotFound
	}
	return row, nil
}
