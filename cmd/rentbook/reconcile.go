// Reconcile command for the rentbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Recompute derived balances from recorded payments",
	Long: `Reconcile recomputes every derived ledger amount in one transaction:
receipt partial payments, paid flags, balances, and agreement outstanding
totals. Safe to run at any time; unchanged books stay unchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		if err := backend.Reconcile(); err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}

		fmt.Println("Books reconciled")
		return nil
	},
}
