package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive merchant dashboard.`,
	RunE:  launchTUI,
}

func launchTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the dashboard needs an interactive terminal; see 'movo --help' for scripting commands")
	}
	return tui.Run(appInstance)
}
