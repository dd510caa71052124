package cmd

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version          = "0.1.0"
	buildDate        = "2020-01-02T03:04+0500"
	stackDumpOnPanic bool
)

var rootCmd = &cobra.Command{
	Use: "snowload",
	Long: `Snowload provisions a Snowflake landing zone and bulk loads CSV files from AWS S3.

It creates the database, schema, file format, external stage and target table it
needs (all idempotently), runs COPY INTO over the staged files and prints a small
sample of the loaded rows so you can see what arrived. Point it at a bucket, set a
few environment variables and off you go.`,
}

func init() {
	// General setup.
	cobra.EnableCommandSorting = false
	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&stackDumpOnPanic, "print-stack", false, "Print a stack dump if there is a panic")
	_ = rootCmd.PersistentFlags().MarkHidden("print-stack")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if twelveFactorMode { // if we are running based on environment variables...
		if lambdaMode { // if we should handle lambda execution...
			lambda.Start(func() error { return execute12FactorMode(twelveFactorActions) })
		} else {
			if err := execute12FactorMode(twelveFactorActions); err != nil {
				// execute12FactorMode prints the error.
				os.Exit(1)
			}
		}
	} else { // else we're using CLI args and flags via Cobra...
		if err := rootCmd.Execute(); err != nil {
			// Execute() prints the error.
			os.Exit(1)
		}
	}
}
