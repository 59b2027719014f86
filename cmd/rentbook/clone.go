// Clone command for the rentbook CLI.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ledgerline/rentbook/pkg/types"
)

var cloneCmd = &cobra.Command{
	Use:   "clone <element> <id>",
	Short: "Duplicate a record as a new draft",
	Long: `Clone copies an existing record into a new draft with a fresh
provisional reference. Unique extension attributes are not carried over.

Example:
  rentbook clone agreement 5`,
	Args: cobra.ExactArgs(2),
	RunE: runClone,
}

func runClone(cmd *cobra.Command, args []string) error {
	element := args[0]
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid identity %q", args[1])
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

	newID, err := eng.Clone(id, flagActor)
	if errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("%s %d not found", element, id)
	}
	if err != nil {
		return fmt.Errorf("clone %s: %w", element, err)
	}

	if flagJSON {
		rec, err := eng.Fetch(newID, "")
		if err != nil {
			return fmt.Errorf("fetch clone: %w", err)
		}
		return printRecord(rec)
	}

	fmt.Printf("Cloned %s %d into %d\n", element, id, newID)
	return nil
}
