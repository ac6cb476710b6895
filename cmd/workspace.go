package cmd

import "github.com/spf13/cobra"

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Manage school workspaces",
	Long: `Workspaces are independent school datasets. Exactly one workspace is
active at a time; its data populates the live collections. Workspaces can be
exported to portable backup files and re-imported on any installation.`,
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
}
