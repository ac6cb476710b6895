package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

var rootCmd = &cobra.Command{
	Use:   "zenith",
	Short: "A single-school administration console",
	Long: `Zenith is a command-line console for a school's administrative data:
student and staff registries, fees, attendance, marks and more. Everything is
persisted in a local store and can be grouped into named workspaces that are
switchable and portable as single backup files.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
