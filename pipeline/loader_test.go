package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/rdbms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvision(t *testing.T) {
	log := logger.NewLogger("snowload", "info", true)
	b := testBundle()
	// Create mock Snowflake connection.
	db, resultChan := shared.NewMockConnection(log, "snowflake") // resultChan contains records of type string (alternating records of SQL and args).
	err := Provision(context.Background(), log, db, b)
	if err != nil {
		t.Fatal(err)
	}
	close(resultChan)
	// Capture results of Provision.
	res := make([]string, 0)
	for s := range resultChan {
		res = append(res, s)
	}
	// Every other record is an args string so we expect 5 DDL statements.
	if len(res) != 10 {
		t.Fatal("unexpected number of records on the mock result channel: ", len(res))
	}
	expectedPrefixes := []string{
		"CREATE DATABASE IF NOT EXISTS",
		"CREATE SCHEMA IF NOT EXISTS",
		"CREATE FILE FORMAT IF NOT EXISTS",
		"CREATE STAGE IF NOT EXISTS",
		"CREATE TABLE IF NOT EXISTS",
	}
	for i, prefix := range expectedPrefixes {
		if !strings.HasPrefix(res[i*2], prefix) {
			t.Fatal("unexpected DDL order. Expected prefix: ", prefix, ". Got: ", res[i*2])
		}
	}
}

func TestLoad(t *testing.T) {
	log := logger.NewLogger("snowload", "info", true)
	b := testBundle()
	db, resultChan := shared.NewMockConnection(log, "snowflake")
	err := Load(context.Background(), log, db, b)
	if err != nil {
		t.Fatal(err)
	}
	close(resultChan)
	res := make([]string, 0)
	for s := range resultChan {
		res = append(res, s)
	}
	expected := GetSqlCopyInto(b)
	if res[0] != expected {
		t.Fatal("unexpected SQL string produced for COPY statement. Expected: ", expected, ". Got: ", res[0])
	}
}

func TestRun(t *testing.T) {
	log := logger.NewLogger("snowload", "info", true)
	b := testBundle()
	mockDb, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mockDb.Close()
	db := &shared.DbConnection{DbSql: mockDb, DbType: "snowflake"}

	for _, stmt := range GetSqlSliceSetupDDL(b) {
		mock.ExpectExec(stmt).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(GetSqlCopyInto(b)).WillReturnResult(sqlmock.NewResult(0, 3))
	sampleSql, err := GetSqlSample(b)
	require.NoError(t, err)
	cols := []string{"ID", "Amount", "Profit", "Quantity", "Category", "Sub_Category", "AMOUNT_NUM", "PROFIT_NUM"}
	mock.ExpectQuery(sampleSql).WillReturnRows(
		sqlmock.NewRows(cols).
			AddRow("1", "12.5", "abc", "2", "Office Supplies", "Paper", 12.5, nil).
			AddRow("2", "100", "20", "1", "Technology", "Phones", 100.0, 20.0).
			AddRow("3", nil, nil, nil, nil, nil, nil, nil))

	rows, err := Run(context.Background(), log, db, b)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Raw text survives untouched while the derived columns are parsed numbers.
	assert.Equal(t, "12.5", *rows[0].Amount)
	assert.Equal(t, 12.5, *rows[0].AmountNum)
	// Unparseable profit text yields a NULL derived column, not an error.
	assert.Equal(t, "abc", *rows[0].Profit)
	assert.Nil(t, rows[0].ProfitNum)
	assert.Equal(t, 20.0, *rows[1].ProfitNum)
	// NULL raw columns scan to nil pointers.
	assert.Nil(t, rows[2].Amount)
	assert.Nil(t, rows[2].AmountNum)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunValidatesBundle(t *testing.T) {
	log := logger.NewLogger("snowload", "info", true)
	db, _ := shared.NewMockConnection(log, "snowflake")
	_, err := Run(context.Background(), log, db, &Bundle{})
	if err == nil {
		t.Fatal("expected an error for an empty bundle")
	}
}
