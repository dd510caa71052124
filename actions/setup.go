package actions

import (
	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/dataops-works/snowload/rdbms"
	"github.com/dataops-works/snowload/rdbms/shared"
)

type SetupConfig struct {
	// Connections
	Connections    ConnectionHandler
	SourceString   ConnectionObject
	TgtConnDetails *shared.ConnectionDetails
	// Load parameters
	Bundle *pipeline.Bundle
	// Generic
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	ExecuteDDL       bool
	StackDumpOnPanic bool
}

// RunSetup prints the provisioning DDL for the warehouse objects named by the
// Bundle, and executes it when ExecuteDDL is set.
func RunSetup(cfg *SetupConfig) error {
	// Setup logging.
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}
	log := logger.NewLogger("snowload", cfg.LogLevel, true)
	if err := cfg.Bundle.Validate(); err != nil {
		return err
	}
	// Get real connection details if we intend to execute.
	var err error
	if cfg.ExecuteDDL {
		if cfg.TgtConnDetails, err = cfg.Connections.GetConnectionDetails(cfg.SourceString.GetConnectionName()); err != nil {
			return err
		}
		if err = helper.ValidateStructIsPopulated(cfg); err != nil {
			return err
		}
	}
	printLogFn := getPrintLogFunc(log, !cfg.ExecuteDDL) // use logger if we're executing DDL.
	for _, stmt := range pipeline.GetSqlSliceSetupDDL(cfg.Bundle) {
		printLogFn(stmt)
		if cfg.ExecuteDDL {
			stmt := stmt
			fn := func() error {
				return rdbms.SnowflakeDDLExec(log, shared.GetDsnConnectionDetails(cfg.TgtConnDetails), stmt)
			}
			mustExecFn(log, printLogFn, fn)
		}
	}
	return nil
}
