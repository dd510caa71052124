package shared

import (
	"context"
	"database/sql"
	"reflect"
)

// DbConnection is a wrapper around Go native sql.DB that satisfies the Connector interface.
type DbConnection struct {
	DbSql  *sql.DB
	DbType string
}

// Connector:

func (c *DbConnection) Exec(query string, args ...interface{}) (Result, error) {
	return c.ExecContext(context.Background(), query, args...)
}

func (c *DbConnection) ExecContext(ctx context.Context, query string, args ...interface{}) (Result, error) {
	return c.DbSql.ExecContext(ctx, query, args...)
}

func (c *DbConnection) Query(query string, args ...interface{}) (*DbRows, error) {
	return c.QueryContext(context.Background(), query, args...)
}

func (c *DbConnection) QueryContext(ctx context.Context, query string, args ...interface{}) (*DbRows, error) {
	r, err := c.DbSql.QueryContext(ctx, query, args...)
	return &DbRows{rowsSql: r}, err
}

func (c *DbConnection) Close() {
	_ = c.DbSql.Close()
}

func (c *DbConnection) GetType() string {
	return c.DbType
}

// Rows:

type DbRows struct {
	rowsSql *sql.Rows
}

func (r *DbRows) Close() error {
	return r.rowsSql.Close()
}

func (r *DbRows) Columns() ([]string, error) {
	return r.rowsSql.Columns()
}

func (r *DbRows) ColumnTypes() ([]*DbColumnType, error) {
	c, err := r.rowsSql.ColumnTypes()          // get the specific column types.
	x := make([]*DbColumnType, len(c), len(c)) // make a generic slice of *DbColumnType.
	for i, v := range c {                      // for each specific column type...
		x[i] = &DbColumnType{colTypeSql: v}
	}
	return x, err
}

func (r *DbRows) Err() error {
	return r.rowsSql.Err()
}

func (r *DbRows) Next() bool {
	return r.rowsSql.Next()
}

func (r *DbRows) NextResultSet() bool {
	return r.rowsSql.NextResultSet()
}

func (r *DbRows) Scan(dest ...interface{}) error {
	return r.rowsSql.Scan(dest...)
}

// ColumnType:

type DbColumnType struct {
	colTypeSql *sql.ColumnType
}

func (c *DbColumnType) DatabaseTypeName() string {
	return c.colTypeSql.DatabaseTypeName()
}

func (c *DbColumnType) DecimalSize() (precision, scale int64, ok bool) {
	return c.colTypeSql.DecimalSize()
}

func (c *DbColumnType) Length() (length int64, ok bool) {
	return c.colTypeSql.Length()
}

func (c *DbColumnType) Name() string {
	return c.colTypeSql.Name()
}

func (c *DbColumnType) Nullable() (nullable, ok bool) {
	return c.colTypeSql.Nullable()
}

func (c *DbColumnType) ScanType() reflect.Type {
	return c.colTypeSql.ScanType()
}
