// Package postgres implements the domain repositories over lib/pq.
package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
)

// decimalPtr converts an optional decimal into a nullable bind parameter.
func decimalPtr(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

// wrapDBError converts a database error into the standard error shape,
// mapping unique violations to ErrAlreadyExists.
func wrapDBError(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ierr.WithError(err).
			WithHint("A record with the same unique fields already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return ierr.WithError(err).
		WithHint(msg).
		Mark(ierr.ErrDatabase)
}

// requireRow turns a zero-row update into a not-found error for the named
// entity.
func requireRow(res sql.Result, entity, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapDBError(err, "failed to read affected rows")
	}
	if affected == 0 {
		return ierr.NewErrorf("%s not found", entity).
			WithHintf("No %s exists with the given ID", entity).
			WithReportableDetails(map[string]interface{}{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

// notFound builds the standard not-found error used by Get paths.
func notFound(entity, id string) error {
	return ierr.NewErrorf("%s not found", entity).
		WithHintf("No %s exists with the given ID", entity).
		WithReportableDetails(map[string]interface{}{"id": id}).
		Mark(ierr.ErrNotFound)
}
