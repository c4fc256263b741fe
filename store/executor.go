// Package store executes parameterized SQL against the configured database.
//
// Every dynamic value is passed as a bind parameter. Table and column names
// only ever come from constants in the calling code.
package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Executor runs a single parameterized statement.
type Executor interface {
	// Query runs a row-returning statement and scans every row into dest,
	// which must be a pointer to a slice, struct or scalar.
	Query(ctx context.Context, dest any, query string, args ...any) error

	// Exec runs a statement and reports the number of affected rows.
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	// Ping checks that the connection is usable.
	Ping(ctx context.Context) error
}

// GormExecutor is an Executor over a gorm connection pool. gorm rewrites
// the ? placeholders for the active dialect.
type GormExecutor struct {
	db *gorm.DB
}

func NewGormExecutor(db *gorm.DB) *GormExecutor {
	return &GormExecutor{db: db}
}

func (e *GormExecutor) Query(ctx context.Context, dest any, query string, args ...any) error {
	if err := e.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return classify("query", err)
	}
	return nil
}

func (e *GormExecutor) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res := e.db.WithContext(ctx).Exec(query, args...)
	if res.Error != nil {
		return 0, classify("exec", res.Error)
	}
	return res.RowsAffected, nil
}

func (e *GormExecutor) Ping(ctx context.Context) error {
	sqlDB, err := e.db.DB()
	if err != nil {
		return &Error{Op: "ping", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &Error{Op: "ping", Err: err}
	}
	return nil
}

func classify(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return errors.Join(ErrConflict, &Error{Op: op, Err: err})
	}
	return &Error{Op: op, Err: err}
}

// isUniqueViolation matches the driver messages for sqlite and postgres,
// since gorm only translates them when TranslateError is enabled.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value")
}
