package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var workspaceCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new workspace",
	Long: `Create a new workspace seeded with the default subject list, session
window and register headers. The first workspace ever created becomes active;
otherwise the live collections are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		ws, err := app.workspaces.Create(args[0])
		if err != nil {
			return err
		}
		app.recordActivity("Workspace Created", fmt.Sprintf("New workspace %s created.", ws.Name))

		fmt.Printf("Created workspace %s %s\n", nameStyle.Render(ws.Name), dimStyle.Render(ws.ID))
		if app.workspaces.CurrentID() == ws.ID {
			fmt.Println(activeStyle.Render("Now active."))
		} else {
			fmt.Printf("Activate it with: zenith workspace switch %s\n", ws.ID)
		}
		return nil
	},
}

func init() {
	workspaceCmd.AddCommand(workspaceCreateCmd)
}
