package rdbms

import (
	"fmt"

	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/rdbms/shared"
	"golang.org/x/net/context"
)

// SqlQuery runs sqltext against db and streams the result set into h, header first.
// Scan targets are built dynamically from the result's column types.
// Cancelling ctx stops the stream between rows and returns the context error.
func SqlQuery(ctx context.Context, log logger.Logger, db shared.Connector, sqltext string, h shared.SqlResultHandler) error {
	rows, err := db.QueryContext(ctx, sqltext)
	if err != nil {
		return fmt.Errorf("error during database query using SQL: '%v': %w", sqltext, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return fmt.Errorf("error fetching column types: %v", err)
	}
	for _, v := range colTypes {
		log.Debug("column scan type = ", v.ScanType())
	}
	// Scan the values dynamically.
	scanVals := make([]interface{}, len(colTypes))
	scanPtrs := make([]interface{}, len(colTypes))
	for idx := range scanVals { // for each column...
		scanPtrs[idx] = &scanVals[idx]
	}
	// Build and send the header.
	header := make([]interface{}, len(colTypes))
	for idx := range colTypes {
		header[idx] = colTypes[idx].Name()
	}
	if err := h.HandleHeader(header); err != nil {
		return err
	}
	// Send the rows via callback interface.
	for rows.Next() {
		if err := ctx.Err(); err != nil { // if we were asked to stop...
			return err
		}
		if err := rows.Scan(scanPtrs...); err != nil {
			return fmt.Errorf("error scanning row: %v", err)
		}
		row := make([]interface{}, len(scanVals))
		copy(row, scanVals)
		if err := h.HandleRow(row); err != nil {
			return err
		}
	}
	return rows.Err()
}
