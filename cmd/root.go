package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inventory and order management backend",
	Run: func(cmd *cobra.Command, args []string) {
		fig := figure.NewFigure("inventory.GO", "slant", true)
		fig.Print()
		fmt.Println()
		if err := cmd.Help(); err != nil {
			log.Println(err)
		}
	},
}

// Execute runs the CLI.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
