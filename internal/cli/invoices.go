package cli

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices",
	Long:  `List the invoices of the connected merchant wallet.`,
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := requireAccount()
		if err != nil {
			return err
		}

		var status *domain.InvoiceStatus
		if cmd.Flags().Changed("status") {
			statusStr, _ := cmd.Flags().GetString("status")
			s := domain.MapInvoiceStatus(statusStr)
			if s == domain.InvoiceStatusUnknown {
				return errors.Newf("unknown status %q (pending, paid, expired, cancelled)", statusStr)
			}
			status = &s
		}
		limit, _ := cmd.Flags().GetInt("limit")

		repo := appInstance.Dashboard.Invoices()
		if err := repo.Load(context.Background(), account); err != nil {
			return err
		}

		invoices := repo.Invoices()
		if status != nil {
			invoices = lo.Filter(invoices, func(vm domain.InvoiceViewModel, _ int) bool {
				return vm.Status == *status
			})
		}
		if limit > 0 && len(invoices) > limit {
			invoices = invoices[:limit]
		}

		if len(invoices) == 0 {
			fmt.Println("No invoices found")
			return nil
		}

		fmt.Printf("%-14s %-20s %-12s %-12s %-22s %-16s %s\n",
			"Number", "Customer", "Created", "Expires", "Amount", "Equivalent", "Status")
		fmt.Println("------------------------------------------------------------------------------------------------------------")

		for _, inv := range invoices {
			fmt.Printf("%-14s %-20s %-12s %-12s %-22s %-16s %s\n",
				truncate(inv.InvoiceNo, 14),
				truncate(orDash(inv.Customer), 20),
				inv.Created,
				inv.Expires,
				truncate(inv.AmountText, 22),
				orDash(inv.Equivalent),
				inv.StatusLabel,
			)
		}

		fmt.Printf("\nTotal: %d invoice(s)\n", len(invoices))
		if n := repo.Rejected(); n > 0 {
			fmt.Printf("Skipped %d malformed record(s) from the server\n", n)
		}
		return nil
	},
}

func init() {
	invoicesListCmd.Flags().String("status", "", "Filter by status (pending, paid, expired, cancelled)")
	invoicesListCmd.Flags().Int("limit", 0, "Show at most this many invoices")

	invoicesCmd.AddCommand(invoicesListCmd)
}
