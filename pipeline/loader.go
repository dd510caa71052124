package pipeline

import (
	"database/sql"
	"fmt"

	"github.com/dataops-works/snowload/constants"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/rdbms/shared"
	"golang.org/x/net/context"
)

// Provision creates the database, schema, file format, stage and table named
// by the Bundle. All DDL is idempotent so re-running against existing objects
// is a no-op.
func Provision(ctx context.Context, log logger.Logger, db shared.Connector, b *Bundle) error {
	for _, stmt := range GetSqlSliceSetupDDL(b) {
		log.Info("executing: ", stmt)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error executing DDL '%v': %w", stmt, err)
		}
	}
	return nil
}

// Load bulk copies staged files matching the Bundle pattern into the target table.
func Load(ctx context.Context, log logger.Logger, db shared.Connector, b *Bundle) error {
	stmt := GetSqlCopyInto(b)
	log.Info("executing: ", stmt)
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("error executing COPY INTO '%v': %w", stmt, err)
	}
	return nil
}

// Sample fetches up to the sample row limit from the target table, including
// the derived numeric columns.
func Sample(ctx context.Context, log logger.Logger, db shared.Connector, b *Bundle) ([]SampleRow, error) {
	sqlText, err := GetSqlSample(b)
	if err != nil {
		return nil, err
	}
	log.Info("executing: ", sqlText)
	rows, err := db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, fmt.Errorf("error during sample query using SQL: '%v': %w", sqlText, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	retval := make([]SampleRow, 0, constants.SampleRowLimit)
	for rows.Next() {
		var id, amount, profit, quantity, category, subCategory sql.NullString
		var amountNum, profitNum sql.NullFloat64
		err := rows.Scan(&id, &amount, &profit, &quantity, &category, &subCategory, &amountNum, &profitNum)
		if err != nil {
			return nil, fmt.Errorf("error scanning sample row: %v", err)
		}
		retval = append(retval, SampleRow{
			ID:          nullStringToPtr(id),
			Amount:      nullStringToPtr(amount),
			Profit:      nullStringToPtr(profit),
			Quantity:    nullStringToPtr(quantity),
			Category:    nullStringToPtr(category),
			SubCategory: nullStringToPtr(subCategory),
			AmountNum:   nullFloatToPtr(amountNum),
			ProfitNum:   nullFloatToPtr(profitNum),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return retval, nil
}

// Run executes the full pipeline: provision the warehouse objects, bulk load
// the staged files and return the post-load sample rows.
func Run(ctx context.Context, log logger.Logger, db shared.Connector, b *Bundle) ([]SampleRow, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := Provision(ctx, log, db, b); err != nil {
		return nil, err
	}
	if err := Load(ctx, log, db, b); err != nil {
		return nil, err
	}
	return Sample(ctx, log, db, b)
}

func nullStringToPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullFloatToPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
