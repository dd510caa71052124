package rdbms

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/rdbms/shared"
	"golang.org/x/net/context"
)

type recordingHandler struct {
	header []interface{}
	rows   [][]interface{}
	onRow  func() // called after each row is handled.
}

func (h *recordingHandler) HandleHeader(i []interface{}) error {
	h.header = i
	return nil
}

func (h *recordingHandler) HandleRow(i []interface{}) error {
	h.rows = append(h.rows, i)
	if h.onRow != nil {
		h.onRow()
	}
	return nil
}

func newMockDbWithRows(t *testing.T, sqlText string, numRows int) *shared.DbConnection {
	mockDb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatal(err)
	}
	rows := sqlmock.NewRows([]string{"ID", "Amount"})
	for idx := 0; idx < numRows; idx++ {
		rows.AddRow("1", "10.5")
	}
	mock.ExpectQuery(sqlText).WillReturnRows(rows)
	return &shared.DbConnection{DbSql: mockDb, DbType: "snowflake"}
}

func TestSqlQuery(t *testing.T) {
	log := logger.NewLogger("snowload", "error", true)
	sqlText := "SELECT ID, Amount FROM ORDERS"

	// Test 1 - header and all rows are streamed to the handler.
	db := newMockDbWithRows(t, sqlText, 3)
	h := &recordingHandler{}
	if err := SqlQuery(context.Background(), log, db, sqlText, h); err != nil {
		t.Fatalf("test 1 failed: expected nil error; got: %v", err)
	}
	if len(h.header) != 2 || h.header[0] != "ID" || h.header[1] != "Amount" {
		t.Fatalf("test 1 failed: unexpected header: %v", h.header)
	}
	if len(h.rows) != 3 {
		t.Fatalf("test 1 failed: expected 3 rows; got: %v", len(h.rows))
	}
	db.Close()

	// Test 2 - cancelling the context stops the stream between rows.
	db = newMockDbWithRows(t, sqlText, 100)
	ctx, cancelFn := context.WithCancel(context.Background())
	h = &recordingHandler{onRow: cancelFn} // cancel after the first row is handled.
	err := SqlQuery(ctx, log, db, sqlText, h)
	if err == nil {
		t.Fatal("test 2 failed: expected an error after cancellation; got nil")
	}
	if len(h.rows) != 1 {
		t.Fatalf("test 2 failed: expected the stream to stop after 1 row; got: %v", len(h.rows))
	}
	db.Close()
}
