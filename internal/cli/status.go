package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/movo/dashboard/internal/domain"
	"github.com/movo/dashboard/internal/profile"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show wallet, profile and invoice summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("API:      %s\n", appInstance.Config.API.BaseURL)

		account, err := requireAccount()
		if err != nil {
			fmt.Println("Wallet:   not connected")
			return nil
		}
		fmt.Printf("Wallet:   %s\n", account)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		gate := appInstance.Dashboard.Profile()
		repo := appInstance.Dashboard.Invoices()

		// the gate and the repository share no state
		var profileErr, invoicesErr error
		var wg conc.WaitGroup
		wg.Go(func() {
			_, profileErr = gate.Resolve(ctx, account)
		})
		wg.Go(func() {
			invoicesErr = repo.Load(ctx, account)
		})
		wg.Wait()

		switch {
		case profileErr != nil:
			fmt.Printf("Profile:  unavailable (%v)\n", profileErr)
		case gate.State() == profile.StateAbsent:
			fmt.Println("Profile:  not created, onboarding required")
		case gate.Completed():
			p := gate.Profile()
			fmt.Printf("Profile:  %s <%s>\n", p.DisplayName(account), p.Contact(account))
		default:
			fmt.Println("Profile:  incomplete, onboarding required")
		}

		if invoicesErr != nil {
			fmt.Printf("Invoices: unavailable (%v)\n", invoicesErr)
			return nil
		}

		counts := lo.CountValuesBy(repo.Invoices(), func(vm domain.InvoiceViewModel) domain.InvoiceStatus {
			return vm.Status
		})
		fmt.Printf("Invoices: %d total\n", len(repo.Invoices()))
		for _, s := range []domain.InvoiceStatus{
			domain.InvoiceStatusPending,
			domain.InvoiceStatusPaid,
			domain.InvoiceStatusExpired,
			domain.InvoiceStatusCancelled,
			domain.InvoiceStatusUnknown,
		} {
			if n := counts[s]; n > 0 {
				fmt.Printf("  %-10s %d\n", s.Label(), n)
			}
		}
		return nil
	},
}
