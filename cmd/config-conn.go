package cmd

import (
	"fmt"

	"github.com/dataops-works/snowload/config"
	"github.com/spf13/cobra"
)

var configConnCmd = &cobra.Command{
	Use:   "connections",
	Short: "Configure connection details",
	Long: fmt.Sprintf(`Configure connections for use by the load actions where:

- Connections are stored in file %q`, config.Connections.FullPath),
}

func init() {
	configCmd.AddCommand(configConnCmd)
	configCmd.Flags().SortFlags = false
	initConnAdd()
	initConnList()
	initConnRemove()
}
