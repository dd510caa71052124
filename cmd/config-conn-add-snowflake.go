package cmd

import (
	"fmt"

	"github.com/dataops-works/snowload/actions"
	"github.com/dataops-works/snowload/config"
	"github.com/dataops-works/snowload/constants"
	"github.com/dataops-works/snowload/rdbms"
	"github.com/spf13/cobra"
)

var configConnSnowflakeCfg = &actions.ConnectionConfig{}
var snowflakeConn = rdbms.SnowflakeConnectionDetails{}

var configConnAddSnowflakeCmd = &cobra.Command{
	Use:   "snowflake",
	Short: "Add a Snowflake connection",
	Long: fmt.Sprintf(`Add a Snowflake connection to the config store %q.
by providing a DSN of the form:

snowflake://<user>:<password>@<account>/<database-name>?schema=<schema>&warehouse=<warehouse>&role=<role>`,
		config.Connections.FullPath),
	RunE: func(cmd *cobra.Command, args []string) error {
		configConnSnowflakeCfg.Type = constants.ConnectionTypeSnowflake
		configConnSnowflakeCfg.ConfigFile = getConnectionGetterSetter()
		configConnSnowflakeCfg.ConnDetails = snowflakeConn
		cmd.SilenceUsage = true
		return actions.RunConnectionAdd(configConnSnowflakeCfg)
	},
}

func init() {
	configConnAddCmd.AddCommand(configConnAddSnowflakeCmd)
	configConnAddSnowflakeCmd.Flags().SortFlags = false
	switches.addFlag(configConnAddSnowflakeCmd, &configConnSnowflakeCfg.LogicalName, "connection-name", "", true, "")
	switches.addFlag(configConnAddSnowflakeCmd, &configConnSnowflakeCfg.Force, "force-connection", "", false, "")
	switches.addFlag(configConnAddSnowflakeCmd, &snowflakeConn.Dsn, "dsn", "", false, "")
}
