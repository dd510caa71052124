package cmd

import (
	"github.com/dataops-works/snowload/actions"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample " + connectionArgsDefinitionTxt,
	Short: "Fetch sample rows from the target table without loading",
	Long: `Fetch the sample rows that the load pipeline would return, without provisioning
or copying anything first. Useful for checking what a previous load left behind.
Use a dry-run to print the sample SQL instead of connecting.`,
	Args: getConnectionArgsFunc(&sampleCfg.SourceString, ""),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runSample()
	},
}

var sampleCfg = actions.SampleConfig{
	Bundle: pipeline.NewBundleFromEnv(),
}

func runSample() error {
	sampleCfg.Connections = getConnectionLoader()
	sampleCfg.StackDumpOnPanic = stackDumpOnPanic
	return actions.RunSample(&sampleCfg)
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().SortFlags = false
	addFlagsBundle(sampleCmd, sampleCfg.Bundle)
	switches.addFlag(sampleCmd, &sampleCfg.Output, "output", "csv", false, "")
	switches.addFlag(sampleCmd, &sampleCfg.DryRun, "dry-run", "false", false, "")
	switches.addFlag(sampleCmd, &sampleCfg.PrintHeader, "print-header", defaultPrintHeader(), false, "")
	switches.addFlag(sampleCmd, &sampleCfg.LogLevel, "log-level", "error", false, "")
}
