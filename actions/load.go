package actions

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/xid"
	"github.com/dataops-works/snowload/helper"
	"github.com/dataops-works/snowload/logger"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/dataops-works/snowload/rdbms"
	"golang.org/x/net/context"
)

type LoadConfig struct {
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

// RunLoad executes the full load pipeline against the named connection:
// provision the warehouse objects, bulk copy staged files and emit the
// post-load sample rows to stdout.
// With DryRun set it emits the statement plan instead of connecting.
func RunLoad(cfg *LoadConfig) error {
	log := logger.NewLogger("snowload", cfg.LogLevel, cfg.StackDumpOnPanic).
		WithField("loadRunId", xid.New().String())
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	if err := cfg.Bundle.Validate(); err != nil {
		return err
	}
	if cfg.DryRun { // if the user wants the plan without touching the warehouse...
		format := cfg.Output
		if format == "csv" { // csv only makes sense for sample rows so fall back to yaml.
			format = "yaml"
		}
		return outputPlanDefinition(log, cfg.Bundle, format)
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
	// Create context.
	ctx, cancelFn := context.WithCancel(context.Background())
	// Handle interrupts.
	chanQuit := make(chan os.Signal, 2)
	chanDone := make(chan struct{}, 1)
	signal.Notify(chanQuit, os.Interrupt, syscall.SIGTERM)
	var rows []pipeline.SampleRow
	// Start the pipeline.
	go func() {
		rows, err = pipeline.Run(ctx, log, db, cfg.Bundle)
		chanDone <- struct{}{}
	}()
	// Wait for the pipeline or interrupt.
	select {
	case <-chanQuit: // if we were interrupted...
		fmt.Println("\nUser abort. Stopping load...")
		cancelFn() // cancel the pipeline.
		select {
		case <-time.After(5 * time.Second): // timeout.
			fmt.Println("Timeout waiting for load to end - aborted")
		case <-chanDone: // pipeline ended.
		}
		return nil
	case <-chanDone: // pipeline ended.
	}
	if err != nil {
		return err
	}
	log.Info("load complete; sample rows returned: ", len(rows))
	return outputSampleRows(log, rows, cfg.Output, cfg.PrintHeader)
}
