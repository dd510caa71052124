package shared

import (
	"context"
)

// Connector abstracts all access to Go SQL functionality.
type Connector interface {
	// Go SQL entry points:
	Exec(query string, args ...interface{}) (Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (Result, error)
	Query(query string, args ...interface{}) (*DbRows, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*DbRows, error)
	Close()
	// Snowload functionality:
	GetType() string
}

// Interfaces to abstract Go SQL library return values.

type Result interface {
	LastInsertId() (int64, error)
	RowsAffected() (int64, error)
}

type SqlResultHandler interface {
	HandleHeader(i []interface{}) error
	HandleRow(i []interface{}) error
}
