package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		workspaces := app.workspaces.List()
		if len(workspaces) == 0 {
			fmt.Println("No workspaces yet. Create one with: zenith workspace create <name>")
			return nil
		}

		current := app.workspaces.CurrentID()
		for _, ws := range workspaces {
			marker := "  "
			if ws.ID == current {
				marker = activeStyle.Render("* ")
			}
			fmt.Printf("%s%s %s\n", marker, nameStyle.Render(ws.Name), dimStyle.Render(ws.ID))
			fmt.Printf("    %s\n", dimStyle.Render(fmt.Sprintf(
				"created %s, last active %s, %d students",
				ws.CreatedAt.Format("2006-01-02"),
				ws.LastActive.Format("2006-01-02"),
				len(ws.Data.Students),
			)))
		}
		return nil
	},
}

func init() {
	workspaceCmd.AddCommand(workspaceListCmd)
}
