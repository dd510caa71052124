package actions

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/dataops-works/snowload/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle() *pipeline.Bundle {
	return &pipeline.Bundle{
		Database:    "DATA_PIPELINE_DB",
		Schema:      "CSV_FILES",
		FileFormat:  "csv_format",
		Stage:       "aws_stage",
		Table:       "ORDERS",
		S3Url:       "s3://bucketsnowflakes3/",
		CopyPattern: ".*Order.*",
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestGetPlanDefinition(t *testing.T) {
	p, err := getPlanDefinition(testBundle())
	require.NoError(t, err)
	require.Len(t, p.Statements, 7)
	assert.Equal(t, "DATA_PIPELINE_DB", p.Bundle.Database)
	assert.Contains(t, p.Statements[5], "ON_ERROR = CONTINUE")
	assert.Contains(t, p.Statements[6], "LIMIT 10")
}

func TestWriteSampleRowsCsv(t *testing.T) {
	rows := []pipeline.SampleRow{
		{
			ID:          strPtr("1"),
			Amount:      strPtr("12.5"),
			Profit:      strPtr("abc"),
			Quantity:    strPtr("2"),
			Category:    strPtr("Office Supplies"),
			SubCategory: strPtr("Paper"),
			AmountNum:   floatPtr(12.5),
			ProfitNum:   nil, // TRY_CAST failed on "abc".
		},
	}
	buf := bytes.NewBufferString("")
	err := writeSampleRowsCsv(buf, rows, true)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Amount,Profit,Quantity,Category,Sub_Category,AMOUNT_NUM,PROFIT_NUM", lines[0])
	assert.Equal(t, "1,12.5,abc,2,Office Supplies,Paper,12.5,", lines[1])

	// Without the header only data rows are written.
	buf.Reset()
	err = writeSampleRowsCsv(buf, rows, false)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
}

func TestFilterKeysByPattern(t *testing.T) {
	re := regexp.MustCompile(".*Order.*")
	keys := []string{"Order-1.csv", "inventory.csv", "2020/Order-2.csv"}
	got := filterKeysByPattern(keys, re)
	require.Len(t, got, 2)
	assert.Equal(t, "Order-1.csv", got[0])
	assert.Equal(t, "2020/Order-2.csv", got[1])
}
