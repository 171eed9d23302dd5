package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inventory.GO/config"
	stockService "inventory.GO/service/stock"
)

var reconcileCmd = &cobra.Command{
	Use:   "stock:reconcile",
	Short: "Repair cached stock from the transaction log and open orders",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}

		drifts, err := stockService.Reconcile(db)
		if err != nil {
			fmt.Printf("Reconcile failed: %v\n", err)
			os.Exit(1)
		}
		if len(drifts) == 0 {
			fmt.Println("No drift: cached stock matches the ledger for every item")
			return
		}
		fmt.Printf("Repaired %d item(s):\n", len(drifts))
		for _, d := range drifts {
			fmt.Printf("  #%d %s: %d -> %d\n", d.ItemID, d.Name, d.Cached, d.Derived)
		}
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
