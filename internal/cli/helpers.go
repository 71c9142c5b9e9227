package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
)

// requireAccount observes the stored wallet and returns its account
func requireAccount() (domain.Account, error) {
	appInstance.Session.Observe(appInstance.Wallet.Current())
	account, err := appInstance.Session.Require()
	if err != nil {
		return "", errors.WithHint(err, "run 'movo wallet connect <address>' first")
	}
	return account, nil
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
