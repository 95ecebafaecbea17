package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/apperror"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func normalizeListQuery(query ListQuery) ListQuery {
	if query.Page < 1 {
		query.Page = defaultPage
	}
	if query.Limit < 1 {
		query.Limit = defaultLimit
	}
	query.Search = strings.TrimSpace(query.Search)
	return query
}

func (q ListQuery) offset() int {
	return (q.Page - 1) * q.Limit
}

// applySearch adds a case-insensitive substring match across the given
// columns. LOWER+LIKE behaves the same on Postgres and SQLite, which keeps
// the service testable against an in-memory store.
func applySearch(tx *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" {
		return tx
	}

	conditions := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	pattern := "%" + strings.ToLower(search) + "%"
	for _, column := range columns {
		conditions = append(conditions, fmt.Sprintf("LOWER(%s) LIKE ?", column))
		args = append(args, pattern)
	}

	return tx.Where(strings.Join(conditions, " OR "), args...)
}

func normalizeRequiredString(raw string, field string) (string, error) {
	value := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(value)
	if length < 1 || length > 500 {
		return "", apperror.Newf(apperror.CodeValidation, "%s length must be in range 1..500", field)
	}
	return value, nil
}

func mapDatabaseError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return apperror.New(apperror.CodeConflict, "resource with the same unique attributes already exists")
		}
		if pgErr.Code == "23503" {
			return apperror.New(apperror.CodeValidation, "invalid foreign key reference")
		}
	}
	return err
}
