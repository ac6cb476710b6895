package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityLimit int

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the recent activity log",
	Long: `Show the audit trail of recent actions, most recent first. The log is
global and not part of any workspace snapshot, so entries from other
workspaces remain visible after a switch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.close()

		entries := app.activity.Recent(activityLimit)
		if len(entries) == 0 {
			fmt.Println("No activity recorded yet.")
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("%s  %s  %s\n",
				dimStyle.Render(entry.Timestamp.Format("2006-01-02 15:04")),
				nameStyle.Render(entry.Action),
				entry.Details,
			)
		}
		return nil
	},
}

func init() {
	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 20, "Maximum entries to show")
	rootCmd.AddCommand(activityCmd)
}
