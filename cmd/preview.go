package cmd

import (
	"github.com/dataops-works/snowload/actions"
	"github.com/dataops-works/snowload/pipeline"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "List the staged S3 files a load would pick up",
	Long: `List the objects behind the S3 URL in the load parameters whose keys match
the COPY pattern. This is what a COPY INTO would load, without touching Snowflake.
Set the usual AWS environment variables for bucket access.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runPreview()
	},
}

var previewCfg = actions.PreviewConfig{
	Bundle: pipeline.NewBundleFromEnv(),
}

func runPreview() error {
	previewCfg.StackDumpOnPanic = stackDumpOnPanic
	return actions.RunPreview(&previewCfg)
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().SortFlags = false
	addFlagsBundle(previewCmd, previewCfg.Bundle)
	switches.addFlag(previewCmd, &previewCfg.Region, "s3-region", "eu-west-1", false, "")
	switches.addFlag(previewCmd, &previewCfg.LogLevel, "log-level", "error", false, "")
}
