package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importYes bool

var workspaceImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a workspace from a backup file",
	Long: `Import a workspace backup file and register it in the workspace list.
A workspace with the same id is replaced. The imported workspace does not
become active; switch to it explicitly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading backup file: %w", err)
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		// Peek at the id so replacing an existing workspace can be confirmed
		// before anything is mutated.
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(data, &head); err == nil && head.ID != "" && !importYes {
			if existing, err := app.workspaces.Get(head.ID); err == nil {
				prompt := fmt.Sprintf("Workspace %q (%s) already exists and will be replaced. Continue?", existing.Name, existing.ID)
				if !confirm(prompt) {
					fmt.Println("Aborted.")
					return nil
				}
			}
		}

		ws, err := app.workspaces.Import(data)
		if err != nil {
			return err
		}
		app.recordActivity("Data Import", fmt.Sprintf("Workspace %s imported from backup.", ws.Name))

		fmt.Printf("Imported workspace %s %s\n", nameStyle.Render(ws.Name), dimStyle.Render(ws.ID))
		fmt.Printf("Switch to it with: zenith workspace switch %s\n", ws.ID)
		return nil
	},
}

func init() {
	workspaceImportCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
	workspaceCmd.AddCommand(workspaceImportCmd)
}
