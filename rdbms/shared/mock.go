package shared

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/dataops-works/snowload/logger"
)

// NewMockConnection returns a Connector that records every statement it is asked to
// execute onto the returned channel, alternating records of SQL and args.
// Queries are not supported by the mock; use sqlmock for tests that need result sets.
func NewMockConnection(log logger.Logger, dbType string) (Connector, chan string) {
	resultChan := make(chan string, 100)
	return &mockConnection{log: log, dbType: dbType, resultChan: resultChan}, resultChan
}

type mockConnection struct {
	log        logger.Logger
	dbType     string
	resultChan chan string
}

type mockResult struct{}

func (r mockResult) LastInsertId() (int64, error) { return 0, nil }
func (r mockResult) RowsAffected() (int64, error) { return 1, nil }

func (c *mockConnection) Exec(query string, args ...interface{}) (Result, error) {
	return c.ExecContext(context.Background(), query, args...)
}

func (c *mockConnection) ExecContext(ctx context.Context, query string, args ...interface{}) (Result, error) {
	c.log.Debug("mock connection exec: ", query)
	c.resultChan <- query
	c.resultChan <- fmt.Sprint(args...)
	return mockResult{}, nil
}

func (c *mockConnection) Query(query string, args ...interface{}) (*DbRows, error) {
	return c.QueryContext(context.Background(), query, args...)
}

func (c *mockConnection) QueryContext(ctx context.Context, query string, args ...interface{}) (*DbRows, error) {
	return nil, errors.New("queries are not supported by the mock connection")
}

func (c *mockConnection) Close() {}

func (c *mockConnection) GetType() string {
	return c.dbType
}
