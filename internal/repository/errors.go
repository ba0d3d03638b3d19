package repository

import (
	"errors"

	"github.com/lib/pq"

	"campus-helper/internal/domain"
)

const (
	codeUndefinedColumn pq.ErrorCode = "42703"
	codeUndefinedTable  pq.ErrorCode = "42P01"
)

// storeErr classifies a driver error. optionalColumn is the single column of
// the statement that the schema may not carry yet; an undefined-column error
// is attributed to it.
func storeErr(op, table, optionalColumn string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUndefinedColumn:
			return &domain.SchemaError{Table: table, Column: optionalColumn, Err: err}
		case codeUndefinedTable:
			return &domain.SchemaError{Table: table, Err: err}
		}
	}

	return &domain.StoreError{Op: op, Err: err}
}
