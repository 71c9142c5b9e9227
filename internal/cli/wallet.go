package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage the connected merchant wallet",
}

var walletConnectCmd = &cobra.Command{
	Use:   "connect <address>",
	Short: "Connect a wallet address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account, err := appInstance.Wallet.Connect(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✓ Connected %s\n", account)
		return nil
	},
}

var walletDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the connected wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cur := appInstance.Wallet.Current()
		if !cur.Connected {
			fmt.Println("No wallet connected")
			return nil
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !confirmPrompt(fmt.Sprintf("Disconnect %s?", cur.Account.Short())) {
			fmt.Println("Cancelled.")
			return nil
		}
		if err := appInstance.Wallet.Disconnect(); err != nil {
			return err
		}
		fmt.Println("✓ Wallet disconnected")
		return nil
	},
}

var walletShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the connected wallet",
	Run: func(cmd *cobra.Command, args []string) {
		cur := appInstance.Wallet.Current()
		if !cur.Connected {
			fmt.Println("No wallet connected")
			return
		}
		fmt.Println(cur.Account)
	},
}

func init() {
	walletDisconnectCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")

	walletCmd.AddCommand(walletConnectCmd)
	walletCmd.AddCommand(walletDisconnectCmd)
	walletCmd.AddCommand(walletShowCmd)
}
