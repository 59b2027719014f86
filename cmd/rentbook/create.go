// Create command for the rentbook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <element> [field=value...]",
	Short: "Create a new record",
	Long: `Create persists a new record of the given element. Fields are given as
key=value pairs; keys outside the element schema are stored as extension
attributes. Omitting the reference assigns a provisional one.

Example:
  rentbook create owner lastname=Martin town=Nantes
  rentbook create property label="12 rue des Lilas" property_type_id=1 fk_owner=1
  rentbook create payment fk_receipt=3 amount=700.00 date_payment=2026-08-01`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	element := args[0]

	rec, err := parseFieldArgs(element, args[1:])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	eng, err := engineFor(backend, element)
	if err != nil {
		return err
	}

	id, err := eng.Create(rec, flagActor)
	if err != nil {
		return fmt.Errorf("create %s: %w", element, err)
	}

	if flagJSON {
		created, err := eng.Fetch(id, "")
		if err != nil {
			return fmt.Errorf("fetch created %s: %w", element, err)
		}
		return printRecord(created)
	}

	fmt.Printf("Created %s %d\n", element, id)
	return nil
}
