package cli

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/movo/dashboard/internal/domain"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or update the merchant profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the merchant profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := requireAccount()
		if err != nil {
			return err
		}

		p, err := appInstance.Dashboard.Profile().Resolve(context.Background(), account)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No merchant profile yet. Run 'movo profile set' or open the dashboard to complete onboarding.")
			return nil
		}

		completed := "no"
		if p.ProfileCompleted {
			completed = "yes"
		}
		fmt.Printf("Wallet:     %s\n", account)
		fmt.Printf("Name:       %s\n", orDash(p.Name))
		fmt.Printf("Business:   %s\n", orDash(p.BusinessName))
		fmt.Printf("Email:      %s\n", orDash(p.Email))
		fmt.Printf("Completed:  %s\n", completed)
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the merchant profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := requireAccount()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		business, _ := cmd.Flags().GetString("business")
		email, _ := cmd.Flags().GetString("email")

		update := domain.NewProfileUpdate(name, business, email)
		if err := update.Validate(); err != nil {
			return err
		}

		p, err := appInstance.API.SaveMerchantProfile(context.Background(), account, update)
		if err != nil {
			return errors.Mark(errors.Wrap(err, "save profile"), domain.ErrProfileSaveFailed)
		}
		fmt.Printf("✓ Saved profile for %s\n", p.DisplayName(account))
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("name", "", "Your name")
	profileSetCmd.Flags().String("business", "", "Business name")
	profileSetCmd.Flags().String("email", "", "Contact email")
	_ = profileSetCmd.MarkFlagRequired("name")
	_ = profileSetCmd.MarkFlagRequired("business")
	_ = profileSetCmd.MarkFlagRequired("email")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
