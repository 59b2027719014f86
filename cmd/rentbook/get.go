// Get command for the rentbook CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerline/rentbook/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <element> <id|ref>",
	Short: "Fetch a record by identity or reference",
	Long: `Get loads one record. A numeric key is treated as the identity, anything
else as the reference.

Example:
  rentbook get property 3
  rentbook get receipt PROV12`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	element := args[0]
	id, ref := parseRecordKey(args[1])

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	eng, err := engineFor(backend, element)
	if err != nil {
		return err
	}

	rec, err := eng.Fetch(id, ref)
	if errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("%s %q not found", element, args[1])
	}
	if err != nil {
		return fmt.Errorf("fetch %s: %w", element, err)
	}

	return printRecord(rec)
}
