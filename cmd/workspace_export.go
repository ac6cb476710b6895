package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var exportDir string

var workspaceExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a workspace to a portable backup file",
	Long: `Export a workspace as a JSON backup file. Exporting the active
workspace captures the live collections; a non-active workspace exports its
last stored snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		doc, err := app.workspaces.Export(args[0])
		if err != nil {
			return err
		}

		dir := exportDir
		if dir == "" {
			dir = app.cfg.Export.Dir
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("preparing export dir: %w", err)
		}

		path := filepath.Join(dir, doc.Filename)
		if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
			return fmt.Errorf("writing backup file: %w", err)
		}

		fmt.Printf("Backup written to %s\n", nameStyle.Render(path))
		return nil
	},
}

func init() {
	workspaceExportCmd.Flags().StringVar(&exportDir, "dir", "", "Directory for the backup file (default from config)")
	workspaceCmd.AddCommand(workspaceExportCmd)
}
