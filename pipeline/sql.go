package pipeline

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dataops-works/snowload/constants"
)

// GetSqlSliceSetupDDL generates the DDL to provision all warehouse objects
// referenced by the Bundle. Every statement uses IF NOT EXISTS so the slice
// can be replayed against a half-provisioned account without error.
func GetSqlSliceSetupDDL(b *Bundle) []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %v", b.Database),
		fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %v", b.TableName().SchemaName()),
		fmt.Sprintf("CREATE FILE FORMAT IF NOT EXISTS %v TYPE = CSV FIELD_DELIMITER = ',' SKIP_HEADER = 1 EMPTY_FIELD_AS_NULL = TRUE",
			b.FileFormatName()),
		fmt.Sprintf("CREATE STAGE IF NOT EXISTS %v URL = '%v' FILE_FORMAT = (FORMAT_NAME = %v)",
			b.StageName(), b.S3Url, b.FileFormatName()),
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %v (ID STRING, Amount NUMBER, Profit NUMBER, Quantity NUMBER, Category STRING, Sub_Category STRING)",
			b.TableName()),
	}
}

// GetSqlCopyInto generates the bulk load statement.
// ON_ERROR = CONTINUE keeps the load going past unparseable rows so one bad
// record in a staged file cannot fail the whole run.
func GetSqlCopyInto(b *Bundle) string {
	return fmt.Sprintf("COPY INTO %v FROM @%v FILE_FORMAT = (FORMAT_NAME = %v) PATTERN = '%v' ON_ERROR = CONTINUE",
		b.TableName(), b.StageName(), b.FileFormatName(), b.CopyPattern)
}

// GetSqlSample generates the post-load sample query.
// The two derived columns use TRY_CAST so values that do not parse as numbers
// come back NULL instead of failing the query.
func GetSqlSample(b *Bundle) (string, error) {
	sqlText, _, err := sq.Select("ID", "Amount", "Profit", "Quantity", "Category", "Sub_Category").
		Column("TRY_CAST(Amount AS DOUBLE) AS AMOUNT_NUM").
		Column("TRY_CAST(Profit AS DOUBLE) AS PROFIT_NUM").
		From(b.TableName().String()).
		Limit(constants.SampleRowLimit).
		ToSql()
	if err != nil {
		return "", err
	}
	return sqlText, nil
}

// GetSqlSlicePlan returns every statement a full run would execute, in order.
// Used by dry runs and the web plan endpoint.
func GetSqlSlicePlan(b *Bundle) ([]string, error) {
	stmts := GetSqlSliceSetupDDL(b)
	stmts = append(stmts, GetSqlCopyInto(b))
	sampleSql, err := GetSqlSample(b)
	if err != nil {
		return nil, err
	}
	return append(stmts, sampleSql), nil
}
