package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active workspace and live collection counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		fmt.Printf("Store: %s %s\n", app.cfg.Storage.Driver, dimStyle.Render(app.cfg.Storage.Path))

		current := app.workspaces.CurrentID()
		if current == "" {
			fmt.Println("Active workspace: " + dimStyle.Render("(none)"))
		} else if ws, err := app.workspaces.Get(current); err == nil {
			fmt.Printf("Active workspace: %s %s\n", nameStyle.Render(ws.Name), dimStyle.Render(ws.ID))
		} else {
			fmt.Printf("Active workspace: %s\n", dimStyle.Render(current))
		}

		settings := app.reg.Settings.Get()
		if settings.SchoolName != "" {
			fmt.Printf("School: %s\n", settings.SchoolName)
		}

		fmt.Printf("Students: %d  Staff: %d  Fees: %d  Attendance: %d  Marks: %d  Books: %d\n",
			len(app.reg.Students.Get()),
			len(app.reg.Staff.Get()),
			len(app.reg.Fees.Get()),
			len(app.reg.Attendance.Get()),
			len(app.reg.Marks.Get()),
			len(app.reg.Books.Get()),
		)
		fmt.Printf("Activity entries: %d\n", len(app.activity.Recent(0)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
