package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var switchYes bool

var workspaceSwitchCmd = &cobra.Command{
	Use:   "switch <id>",
	Short: "Switch the active workspace",
	Long: `Switch the active workspace. Every live collection is overwritten with
the target workspace's stored snapshot; unsaved live data of the previously
active workspace is lost unless it was exported first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		target, err := app.workspaces.Get(args[0])
		if err != nil {
			return err
		}

		if !switchYes {
			prompt := fmt.Sprintf("Switching to %q overwrites all live collections with its snapshot. Continue?", target.Name)
			if !confirm(prompt) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := app.workspaces.Switch(target.ID); err != nil {
			return err
		}
		app.recordActivity("Workspace Switch", fmt.Sprintf("Switched to %s.", target.Name))

		fmt.Printf("Now active: %s\n", nameStyle.Render(target.Name))
		return nil
	},
}

func init() {
	workspaceSwitchCmd.Flags().BoolVarP(&switchYes, "yes", "y", false, "Skip the confirmation prompt")
	workspaceCmd.AddCommand(workspaceSwitchCmd)
}
