package cmd

import (
	"fmt"

	"github.com/dataops-works/snowload/actions"
	"github.com/dataops-works/snowload/aws/s3"
	"github.com/dataops-works/snowload/config"
	"github.com/dataops-works/snowload/constants"
	"github.com/spf13/cobra"
)

var configConnS3 = &actions.ConnectionConfig{}
var s3Conn = s3.AwsS3Bucket{}

var configConnAddS3Cmd = &cobra.Command{
	Use:   "s3",
	Short: "Add an AWS S3 bucket",
	Long: fmt.Sprintf(`Add an AWS S3 bucket to the config store %q.

Provide a URL or supply individual flags.
Trailing slashes are trimmed and cleaned up internally.
The URL takes precedence and should be of the form:

s3://<bucket name>/<prefix>`,
		config.Connections.FullPath),
	RunE: func(cmd *cobra.Command, args []string) error {
		configConnS3.Type = constants.ConnectionTypeS3
		configConnS3.ConfigFile = getConnectionGetterSetter()
		configConnS3.ConnDetails = s3Conn
		cmd.SilenceUsage = true
		return actions.RunConnectionAdd(configConnS3)
	},
}

func init() {
	configConnAddCmd.AddCommand(configConnAddS3Cmd)
	configConnAddS3Cmd.Flags().SortFlags = false

	switches.addFlag(configConnAddS3Cmd, &configConnS3.LogicalName, "connection-name", "", true, "")
	switches.addFlag(configConnAddS3Cmd, &configConnS3.Force, "force-connection", "", false, "")
	switches.addFlag(configConnAddS3Cmd, &s3Conn.Dsn, "s3-dsn", "", false, "")
	switches.addFlag(configConnAddS3Cmd, &s3Conn.Name, "s3-bucket", "", true, "")
	switches.addFlag(configConnAddS3Cmd, &s3Conn.Prefix, "s3-prefix", "", false, "")
	switches.addFlag(configConnAddS3Cmd, &s3Conn.Region, "s3-region", "eu-west-1", false, "")
}
