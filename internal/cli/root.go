package cli

import (
	"github.com/movo/dashboard/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "movo",
	Short: "Merchant dashboard for Movo stablecoin invoices",
	Long: `Movo lets merchants create invoices that customers pay in USDC and
track their status from the terminal.

By default, running movo without arguments launches the interactive dashboard.
Use subcommands for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          launchTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(invoicesCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tuiCmd)
}
