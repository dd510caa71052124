package pipeline

import (
	"strings"
	"testing"
)

func testBundle() *Bundle {
	return &Bundle{
		Database:    "DATA_PIPELINE_DB",
		Schema:      "CSV_FILES",
		FileFormat:  "csv_format",
		Stage:       "aws_stage",
		Table:       "ORDERS",
		S3Url:       "s3://bucketsnowflakes3/",
		CopyPattern: ".*Order.*",
	}
}

func TestGetSqlSliceSetupDDL(t *testing.T) {
	b := testBundle()
	got := GetSqlSliceSetupDDL(b)
	expected := []string{
		"CREATE DATABASE IF NOT EXISTS DATA_PIPELINE_DB",
		"CREATE SCHEMA IF NOT EXISTS DATA_PIPELINE_DB.CSV_FILES",
		"CREATE FILE FORMAT IF NOT EXISTS DATA_PIPELINE_DB.CSV_FILES.csv_format TYPE = CSV FIELD_DELIMITER = ',' SKIP_HEADER = 1 EMPTY_FIELD_AS_NULL = TRUE",
		"CREATE STAGE IF NOT EXISTS DATA_PIPELINE_DB.CSV_FILES.aws_stage URL = 's3://bucketsnowflakes3/' FILE_FORMAT = (FORMAT_NAME = DATA_PIPELINE_DB.CSV_FILES.csv_format)",
		"CREATE TABLE IF NOT EXISTS DATA_PIPELINE_DB.CSV_FILES.ORDERS (ID STRING, Amount NUMBER, Profit NUMBER, Quantity NUMBER, Category STRING, Sub_Category STRING)",
	}
	if len(got) != len(expected) {
		t.Fatalf("expected %v statements; got %v", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("unexpected DDL statement %v. Expected: %v. Got: %v", i, expected[i], got[i])
		}
	}
}

func TestGetSqlCopyInto(t *testing.T) {
	b := testBundle()
	expected := "COPY INTO DATA_PIPELINE_DB.CSV_FILES.ORDERS FROM @DATA_PIPELINE_DB.CSV_FILES.aws_stage " +
		"FILE_FORMAT = (FORMAT_NAME = DATA_PIPELINE_DB.CSV_FILES.csv_format) PATTERN = '.*Order.*' ON_ERROR = CONTINUE"
	if got := GetSqlCopyInto(b); got != expected {
		t.Fatalf("unexpected COPY statement. Expected: %v. Got: %v", expected, got)
	}
}

func TestGetSqlSample(t *testing.T) {
	b := testBundle()
	got, err := GetSqlSample(b)
	if err != nil {
		t.Fatal(err)
	}
	expected := "SELECT ID, Amount, Profit, Quantity, Category, Sub_Category, " +
		"TRY_CAST(Amount AS DOUBLE) AS AMOUNT_NUM, TRY_CAST(Profit AS DOUBLE) AS PROFIT_NUM " +
		"FROM DATA_PIPELINE_DB.CSV_FILES.ORDERS LIMIT 10"
	if got != expected {
		t.Fatalf("unexpected sample statement. Expected: %v. Got: %v", expected, got)
	}
}

func TestGetSqlSlicePlan(t *testing.T) {
	b := testBundle()
	got, err := GetSqlSlicePlan(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 7 { // 5 x DDL + COPY + sample.
		t.Fatalf("expected 7 statements in the plan; got %v", len(got))
	}
	if !strings.HasPrefix(got[5], "COPY INTO") {
		t.Fatal("expected COPY INTO after the DDL statements. Got: ", got[5])
	}
	if !strings.HasPrefix(got[6], "SELECT") {
		t.Fatal("expected the sample query last. Got: ", got[6])
	}
}
