package cmd

import (
	"github.com/dataops-works/snowload/actions"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup " + connectionArgsDefinitionTxt,
	Short: "Print or execute the DDL that provisions the warehouse objects",
	Long: `Print the idempotent DDL required to provision the database, schema, file format,
external stage and target table used by the load pipeline.
Supply --execute-ddl to run the statements against the named connection instead of printing them.`,
	Args: getConnectionArgsFunc(&setupCfg.SourceString, ""),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runSetup()
	},
}

var setupCfg = actions.SetupConfig{
	Bundle: pipeline.NewBundleFromEnv(),
}

func runSetup() error {
	setupCfg.Connections = getConnectionHandler()
	setupCfg.StackDumpOnPanic = stackDumpOnPanic
	return actions.RunSetup(&setupCfg)
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.Flags().SortFlags = false
	addFlagsBundle(setupCmd, setupCfg.Bundle)
	switches.addFlag(setupCmd, &setupCfg.ExecuteDDL, "execute-ddl", "false", false, "")
	switches.addFlag(setupCmd, &setupCfg.LogLevel, "log-level", "error", false, "")
}
