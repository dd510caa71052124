package actions

import (
	"fmt"

	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/dataops-works/snowload/rdbms"
	"golang.org/x/net/context"
)

type SampleConfig struct {
	// Connections
	Connections  ConnectionLoader
	SourceString ConnectionObject
	// Load parameters
	Bundle *pipeline.Bundle
	// Generic
	DryRun           bool
	Output           string `errorTxt:"output format csv|json|yaml" mandatory:"yes"`
	PrintHeader      bool
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic bool
}

// RunSample fetches the sample rows from the target table without loading
// anything first. Useful for checking what a previous load left behind.
func RunSample(cfg *SampleConfig) error {
	log := logger.NewLogger("snowload", cfg.LogLevel, cfg.StackDumpOnPanic)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	if err := cfg.Bundle.Validate(); err != nil {
		return err
	}
	if cfg.DryRun {
		sqlText, err := pipeline.GetSqlSample(cfg.Bundle)
		if err != nil {
			return err
		}
		fmt.Println(sqlText)
		return nil
	}
	// Connect to database.
	conn, err := cfg.Connections.LoadConnection(cfg.SourceString.GetConnectionName())
	if err != nil {
		return err
	}
	db, err := rdbms.OpenDbConnection(log, conn)
	if err != nil {
		return err
	}
	defer db.Close()
	rows, err := pipeline.Sample(context.Background(), log, db, cfg.Bundle)
	if err != nil {
		return err
	}
	return outputSampleRows(log, rows, cfg.Output, cfg.PrintHeader)
}
