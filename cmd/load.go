package cmd

import (
	"os"

	"github.com/dataops-works/snowload/actions"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const connectionArgsDefinitionTxt string = "<connection>"

var loadCmd = &cobra.Command{
	Use:   "load " + connectionArgsDefinitionTxt,
	Short: "Provision warehouse objects and bulk copy staged CSV files into the target table",
	Long: `Run the full load pipeline against a configured Snowflake connection:

- Create the database, schema, file format, external stage and target table if they're missing
- COPY INTO the target table from the stage, skipping rejected records
- Print a sample of the loaded rows including numeric conversions of the Amount and Profit fields

Load parameters default from the environment (SF_DB, SF_SCHEMA, SF_FILE_FORMAT, SF_STAGE,
SF_TABLE, S3_URL, COPY_PATTERN) and can be overridden with flags.
Use a dry-run to print the statement plan without connecting.`,
	Args: getConnectionArgsFunc(&loadCfg.SourceString, ""),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true // avoid dumping command help when the load fails server-side.
		return runLoad()
	},
}

var loadCfg = actions.LoadConfig{
	Bundle: pipeline.NewBundleFromEnv(),
}

func runLoad() error {
	loadCfg.Connections = getConnectionLoader()
	loadCfg.StackDumpOnPanic = stackDumpOnPanic
	return actions.RunLoad(&loadCfg)
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().SortFlags = false
	addFlagsBundle(loadCmd, loadCfg.Bundle)
	switches.addFlag(loadCmd, &loadCfg.Output, "output", "csv", false, "")
	switches.addFlag(loadCmd, &loadCfg.DryRun, "dry-run", "false", false, "")
	switches.addFlag(loadCmd, &loadCfg.PrintHeader, "print-header", defaultPrintHeader(), false, "")
	switches.addFlag(loadCmd, &loadCfg.LogLevel, "log-level", "error", false, "")
}

// defaultPrintHeader returns "true" when stdout is a terminal, so interactive
// runs get CSV headers while pipes stay clean.
func defaultPrintHeader() string {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return "true"
	}
	return "false"
}
