package cmd

import (
	"net"

	"github.com/dataops-works/snowload/actions"

	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a web service exposing the load pipeline over HTTP",
	Long: `Start a web service with endpoints for health checks, the statement plan,
sample rows and a POST /load trigger. Load parameters are re-read from the
environment per request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		serveConfig.Connections = getConnectionLoader()
		serveConfig.StackDumpOnPanic = stackDumpOnPanic
		return actions.RunWebServer(&serveConfig)
	},
}

var serveConfig = actions.WebServerConfig{
	LogLevel: "info",
	Scheme:   "http",
	Addr:     net.IP{0, 0, 0, 0},
	Port:     8080,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().SortFlags = false
	serveCmd.Flags().IPVarP(&serveConfig.Addr, "address", "a", net.IP{0, 0, 0, 0}, "Address to listen on")
	switches.addFlag(serveCmd, &serveConfig.Port, "port", "8080", false, "")
	switches.addFlag(serveCmd, &serveConfig.ConnectionName, "connection-name", "", true, "")
	switches.addFlag(serveCmd, &serveConfig.LogLevel, "log-level", "info", false, "")
}
